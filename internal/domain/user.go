package domain

// User is an admin-area account. Roles: USER (read-only staff) or ADMIN.
type User struct {
	ID    string `db:"id"`
	Email string `db:"email"`
	Name  string `db:"name"`
	Hash  string `db:"password_hash"`
	Role  string `db:"role"`
}
