package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns      = []string{"user_id", "email", "password_hash", "created_at"}
	sessionColumns   = []string{"session_id", "user_id", "expires_at", "revoked_at", "created_at"}
	categoryColumns  = []string{"category_id", "user_id", "name", "created_at"}
	documentColumns  = []string{"document_id", "user_id", "category_id", "title", "file_url", "object_key", "size", "content_type", "created_at"}
	folderColumns    = []string{"folder_id", "user_id", "name", "created_at"}
	registreColumns  = []string{"registre_id", "user_id", "folder_id", "date", "full_name", "phone", "serial_number", "plate_number", "origin", "signer_name", "signature_key", "created_at", "updated_at"}
	registreSearched = []string{"full_name", "phone", "serial_number", "plate_number", "origin"}
)

// likePattern escapes LIKE wildcards in term and wraps it for a
// contains-match.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}

// ilikeAny matches term case-insensitively against any of columns.
func ilikeAny(columns []string, term string) sq.Or {
	pattern := likePattern(term)
	or := make(sq.Or, 0, len(columns))
	for _, c := range columns {
		or = append(or, sq.ILike{c: pattern})
	}
	return or
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
