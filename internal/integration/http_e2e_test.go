//go:build integration || !unit

package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	httpserver "stayfinder/internal/adapters/http_server"
	"stayfinder/internal/discovery"
	"stayfinder/internal/domain"
	mysqlrepo "stayfinder/internal/storage/mysql"
)

// ---------- helpers ----------
func pfloat(f float64) *float64 { return &f }

func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/migrations)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("MIGRATIONS_DIR=%s is not a directory or missing", dir)
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)
	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

// noopCache keeps the e2e path on MySQL; Redis has its own adapter tests.
type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string, dst any) (bool, error)   { return false, nil }
func (noopCache) Set(ctx context.Context, key string, v any, ttlSec int) error { return nil }
func (noopCache) Del(ctx context.Context, key string) error                    { return nil }

// ---------- the test ----------
func TestHTTP_EndToEnd_Discovery(t *testing.T) {
	// Start isolated MySQL container
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=stayfinder",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "stayfinder")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)

	repo := mysqlrepo.New(db)
	ctx := context.Background()

	// Seed: one geocoded property in range, one out of range, one unlocated.
	seed := []domain.Property{
		{
			ID: 1, Name: "Sunrise PG", City: "Pune", Locality: "Kothrud",
			Lat: pfloat(18.5074), Lng: pfloat(73.8077),
			GenderType: domain.GenderUnisex, StartingPrice: 9000,
			Amenities: []string{"WiFi", "AC"}, Rating: 4.3, TotalReviews: 27, IsAvailable: true,
		},
		{
			ID: 2, Name: "Faraway Stay", City: "Mumbai", Locality: "Andheri",
			Lat: pfloat(19.1197), Lng: pfloat(72.8468),
			GenderType: domain.GenderMale, StartingPrice: 15000,
			Amenities: []string{"WiFi"}, Rating: 4.0, TotalReviews: 80, IsAvailable: true,
		},
		{
			ID: 3, Name: "Hidden Home", City: "Pune",
			GenderType: domain.GenderFemale, StartingPrice: 7000,
			Amenities: []string{}, IsAvailable: true,
		},
	}
	for _, p := range seed {
		if err := repo.UpsertProperty(ctx, p); err != nil {
			t.Fatalf("UpsertProperty(%d): %v", p.ID, err)
		}
	}
	if err := repo.UpsertRoomTypes(ctx, []domain.RoomType{
		{PropertyID: 1, Category: domain.RoomSingle, PricePerMonth: 9000, AvailableRooms: 2, TotalRooms: 4},
	}); err != nil {
		t.Fatalf("UpsertRoomTypes: %v", err)
	}

	// Full service wiring, real router.
	d := discovery.NewService(repo, noopCache{}, time.Minute)
	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{D: d})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	// Catalog: city + room type filter.
	res, err := http.Get(ts.URL + "/v1/properties?city=Pune&room_type=Single")
	if err != nil {
		t.Fatalf("GET catalog: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("catalog status %d", res.StatusCode)
	}
	var items []map[string]any
	if err := json.NewDecoder(res.Body).Decode(&items); err != nil {
		t.Fatalf("decode catalog: %v", err)
	}
	if len(items) != 1 || items[0]["id"].(float64) != 1 {
		t.Fatalf("unexpected catalog body: %+v", items)
	}

	// Geo: anchored near Pune; the Mumbai property and the unlocated one
	// must both be absent.
	res2, err := http.Get(ts.URL + "/v1/properties/nearby?lat=18.52&lng=73.85&radius=10")
	if err != nil {
		t.Fatalf("GET nearby: %v", err)
	}
	defer res2.Body.Close()
	if res2.StatusCode != http.StatusOK {
		t.Fatalf("nearby status %d", res2.StatusCode)
	}
	var geoItems []map[string]any
	if err := json.NewDecoder(res2.Body).Decode(&geoItems); err != nil {
		t.Fatalf("decode nearby: %v", err)
	}
	if len(geoItems) != 1 || geoItems[0]["id"].(float64) != 1 {
		t.Fatalf("unexpected nearby body: %+v", geoItems)
	}
	if _, ok := geoItems[0]["distance"]; !ok {
		t.Fatalf("nearby items must carry a distance")
	}
}
