package store

const (
	createUser = `INSERT INTO users (name, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, name, email, password_hash, created_at;`

	findUserByName = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE name = $1;`
)
