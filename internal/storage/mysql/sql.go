package mysql

const upsertPropertySQL = `
INSERT INTO properties
  (id, type, city, neighborhood, address, price, bedrooms, bathrooms, square_feet, year_built, description)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  type         = VALUES(type),
  city         = VALUES(city),
  neighborhood = VALUES(neighborhood),
  address      = VALUES(address),
  price        = VALUES(price),
  bedrooms     = VALUES(bedrooms),
  bathrooms    = VALUES(bathrooms),
  square_feet  = VALUES(square_feet),
  year_built   = VALUES(year_built),
  description  = VALUES(description),
  updated_at   = CURRENT_TIMESTAMP
`

// pos is the insertion-order tie-break: catalog load order must match the
// order listings were seeded.
const selectPropertiesSQL = `
SELECT
  id, type, city, neighborhood, address,
  price, bedrooms, bathrooms, square_feet, year_built, description
FROM properties
ORDER BY pos
`
