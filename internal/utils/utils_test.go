package utils

import (
	"context"
	"strings"
	"testing"
	"time"

	"seafresh-be/internal/auth"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("crab@sea.in"))
	assert.False(t, ValidateEmail("crab@sea"))
	assert.False(t, ValidateEmail("crab sea@x.in"))
	assert.False(t, ValidateEmail(""))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("9876543210"))
	assert.True(t, ValidatePhone("98765-43210"))
	assert.False(t, ValidatePhone("12345"))
	assert.False(t, ValidatePhone("+91 98765 43210"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.co", NormalizeEmail("  A@B.co "))
}

func TestPointers(t *testing.T) {
	assert.Equal(t, "x", PtrString(StrPtr("x")))
	assert.Equal(t, "", PtrString(nil))
}

func TestIdentityContext(t *testing.T) {
	ctx := context.Background()
	_, ok := IdentityFrom(ctx)
	assert.False(t, ok)

	ctx = WithIdentity(ctx, auth.Identity{SubjectID: "s1", Email: "s@x.in", Role: auth.RoleSeller})

	id, ok := IdentityFrom(ctx)
	assert.True(t, ok)
	assert.Equal(t, "s1", id.SubjectID)

	sellerID, ok := SubjectIDFrom(ctx, auth.RoleSeller)
	assert.True(t, ok)
	assert.Equal(t, "s1", sellerID)

	_, ok = SubjectIDFrom(ctx, auth.RoleCustomer)
	assert.False(t, ok)
}

func TestGenerateOrderNumber(t *testing.T) {
	now := time.Date(2026, 3, 4, 5, 6, 7, 89*int(time.Millisecond), time.UTC)

	t.Run("Format", func(t *testing.T) {
		num := GenerateOrderNumber(now)
		parts := strings.Split(num, "-")
		if assert.Len(t, parts, 5) {
			assert.Equal(t, "ORD", parts[0])
			assert.Equal(t, "20260304", parts[1])
			assert.Equal(t, "050607", parts[2])
			assert.Equal(t, "089", parts[3])
			assert.Len(t, parts[4], 4)
		}
	})

	t.Run("Uniqueness", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 5; i++ {
			seen[GenerateOrderNumber(time.Now())] = true
		}
		assert.Greater(t, len(seen), 1)
	})
}
