package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-pooja-site/models"
)

const usersTable = "users"

var userColumns = []string{"id", "name", "email", "password", "role", "created_at", "updated_at"}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Email, user.Password, string(user.Role), user.CreatedAt, user.UpdatedAt).
		ToSql()
}

func buildCountUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("COUNT(*)").From(usersTable).ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
}

// buildSelectUsersByRoleQuery leaves the password column out.
func buildSelectUsersByRoleQuery(b sq.StatementBuilderType, role models.Role) (string, []any, error) {
	return b.Select("id", "name", "email", "role", "created_at", "updated_at").
		From(usersTable).
		Where(sq.Eq{"role": string(role)}).
		OrderBy("created_at").
		ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, id, name, email string, now time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("name", name).
		Set("email", email).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildUpdatePasswordQuery(b sq.StatementBuilderType, id, passwordHash string, now time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("password", passwordHash).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		ToSql()
}
