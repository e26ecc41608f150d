package user

import (
	"fmt"
	"strings"

	domain "user-account-api/internal/domain/user"
)

const userColumns = `id, name, email, password_hash, phone, city, country, role, created_at`

const (
	SelectUsers = `
		SELECT ` + userColumns + `
		FROM users
	`
	SelectUserByID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`
	SelectUserByEmail = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`
	InsertUser = `
		INSERT INTO users (id, name, email, password_hash, phone, city, country, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + userColumns

	// strpos keeps the match a literal, case-sensitive substring; LIKE would treat % and _ in q as wildcards.
	whereQ       = `(strpos(name, $%d) > 0 OR strpos(email, $%d) > 0)`
	whereCountry = `country = $%d`
	orderUsers   = `ORDER BY created_at, id`
)

// buildSelectUsers translates a filter into SelectUsers plus ANDed predicates.
func buildSelectUsers(f domain.Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.Q != "" {
		args = append(args, f.Q)
		conds = append(conds, fmt.Sprintf(whereQ, len(args), len(args)))
	}
	if f.Country != "" {
		args = append(args, f.Country)
		conds = append(conds, fmt.Sprintf(whereCountry, len(args)))
	}

	var sb strings.Builder
	sb.WriteString(SelectUsers)
	if len(conds) > 0 {
		sb.WriteString("WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
		sb.WriteString("\n")
	}
	sb.WriteString(orderUsers)

	return sb.String(), args
}
