package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"stayfinder/internal/domain"
)

func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertProperty(ctx context.Context, p domain.Property) error {
	amen, _ := json.Marshal(p.Amenities)
	_, err := r.db.ExecContext(ctx, upsertPropertySQL,
		p.ID,
		p.Name,
		p.City,
		p.Locality,
		p.Address,
		valF64(p.Lat),
		valF64(p.Lng),
		string(p.GenderType),
		p.StartingPrice,
		string(amen),
		p.Rating,
		p.TotalReviews,
		p.IsAvailable,
	)
	return err
}

func (r *Repo) UpsertRoomTypes(ctx context.Context, rts []domain.RoomType) error {
	if len(rts) == 0 {
		return nil
	}
	values := make([]string, 0, len(rts))
	args := make([]any, 0, len(rts)*6)
	for _, rt := range rts {
		values = append(values, "(?,?,?,?,?,?)")
		var id any
		if rt.ID != 0 {
			id = rt.ID
		}
		args = append(args,
			id, // nil lets AUTO_INCREMENT assign one
			rt.PropertyID,
			string(rt.Category),
			rt.PricePerMonth,
			rt.AvailableRooms,
			rt.TotalRooms,
		)
	}
	sqlStr := insertRoomTypesPrefix + strings.Join(values, ",") + insertRoomTypesOnDup
	_, err := r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *Repo) LogMiss(ctx context.Context, id int64, status int, reason string) error {
	_, err := r.db.ExecContext(ctx, insertMissSQL, id, status, reason)
	return err
}

func (r *Repo) ListProperties(ctx context.Context) ([]domain.Property, error) {
	rows, err := r.db.QueryContext(ctx, listPropertiesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Property
	for rows.Next() {
		var p domain.Property
		var lat, lng sql.NullFloat64
		var gender string
		var amenitiesJSON []byte
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.City,
			&p.Locality,
			&p.Address,
			&lat, &lng,
			&gender,
			&p.StartingPrice,
			&amenitiesJSON,
			&p.Rating,
			&p.TotalReviews,
			&p.IsAvailable,
		); err != nil {
			return nil, err
		}
		// Coordinates only as a complete pair; half a pair is no location.
		if lat.Valid && lng.Valid {
			la, ln := lat.Float64, lng.Float64
			p.Lat, p.Lng = &la, &ln
		}
		p.GenderType = domain.GenderType(gender)
		_ = json.Unmarshal(amenitiesJSON, &p.Amenities)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) ListRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	rows, err := r.db.QueryContext(ctx, listRoomTypesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RoomType
	for rows.Next() {
		var rt domain.RoomType
		var category string
		if err := rows.Scan(
			&rt.ID,
			&rt.PropertyID,
			&category,
			&rt.PricePerMonth,
			&rt.AvailableRooms,
			&rt.TotalRooms,
		); err != nil {
			return nil, err
		}
		rt.Category = domain.RoomCategory(category)
		out = append(out, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
