package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestIsDuplicateKeyError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	require.True(t, isDuplicateKeyError(dup, "email"))
	require.True(t, isDuplicateKeyError(fmt.Errorf("create user: %w", dup), "email"))
	require.False(t, isDuplicateKeyError(dup, "license_number"))

	fk := &pgconn.PgError{Code: "23503", ConstraintName: "users_email_key"}
	require.False(t, isDuplicateKeyError(fk, "email"))

	require.False(t, isDuplicateKeyError(errors.New("email"), "email"))
	require.False(t, isDuplicateKeyError(nil, "email"))
}

func TestIsForeignKeyError(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "appointments_doctor_profile_id_fkey"}

	require.True(t, isForeignKeyError(fk, "doctor_profile_id"))
	require.False(t, isForeignKeyError(fk, "patient_profile_id"))
	require.False(t, isForeignKeyError(&pgconn.PgError{Code: "23505", ConstraintName: "x"}, "x"))
}
