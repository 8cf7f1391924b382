package mysql

const upsertPropertySQL = `
INSERT INTO properties
  (id, name, city, locality, address, lat, lng, gender_type, starting_price, amenities, rating, total_reviews, is_available)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name           = VALUES(name),
  city           = VALUES(city),
  locality       = VALUES(locality),
  address        = VALUES(address),
  lat            = VALUES(lat),
  lng            = VALUES(lng),
  gender_type    = VALUES(gender_type),
  starting_price = VALUES(starting_price),
  amenities      = VALUES(amenities),
  rating         = VALUES(rating),
  total_reviews  = VALUES(total_reviews),
  is_available   = VALUES(is_available),
  updated_at     = CURRENT_TIMESTAMP
`

const insertRoomTypesPrefix = "INSERT INTO room_types\n  (id, property_id, category, price_per_month, available_rooms, total_rooms)\nVALUES "

const insertRoomTypesOnDup = ` ON DUPLICATE KEY UPDATE
  category        = VALUES(category),
  price_per_month = VALUES(price_per_month),
  available_rooms = VALUES(available_rooms),
  total_rooms     = VALUES(total_rooms)
`

const insertMissSQL = `
INSERT INTO ingest_misses (id, http_status, reason)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE seen_at = CURRENT_TIMESTAMP
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

// Full snapshots ordered by id; the discovery core expects a deterministic
// candidate order before its own sort.
const listPropertiesSQL = `
SELECT
  id, name, city, locality, address,
  lat, lng,
  gender_type, starting_price, amenities,
  rating, total_reviews, is_available
FROM properties
ORDER BY id
`

const listRoomTypesSQL = `
SELECT id, property_id, category, price_per_month, available_rooms, total_rooms
FROM room_types
ORDER BY id
`
