package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthoritiesFor(t *testing.T) {
	tests := []struct {
		role Role
		want Authorities
	}{
		{role: RoleAdmin, want: Authorities{AuthorityAdmin, AuthorityUser}},
		{role: RoleUser, want: Authorities{AuthorityUser}},
		{role: Role("GUEST"), want: Authorities{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, AuthoritiesFor(tt.role))
		})
	}

	assert.True(t, AuthoritiesFor(RoleAdmin).Has(AuthorityUser))
	assert.False(t, AuthoritiesFor(RoleUser).Has(AuthorityAdmin))
}

func TestNewOneTimePassword(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	_, err := NewOneTimePassword("", now)
	assert.ErrorIs(t, err, ErrEmptyOTPCode)

	_, err = NewOneTimePassword("123456", time.Time{})
	assert.ErrorIs(t, err, ErrZeroOTPGeneratedAt)

	otp, err := NewOneTimePassword("123456", now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(5*time.Minute), otp.ExpiresAt())
}

func TestOneTimePassword_IsValidAt(t *testing.T) {
	generated := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	otp := &OneTimePassword{Code: "000042", GeneratedAt: generated}

	assert.True(t, otp.IsValidAt(generated))
	assert.True(t, otp.IsValidAt(generated.Add(5*time.Minute-time.Nanosecond)))
	assert.False(t, otp.IsValidAt(generated.Add(5*time.Minute)))
	assert.False(t, otp.IsValidAt(generated.Add(6*time.Minute)))
}

func TestUser_Enable(t *testing.T) {
	u := &User{OTP: &OneTimePassword{Code: "111111", GeneratedAt: time.Now()}}

	u.Enable()

	assert.True(t, u.Enabled)
	assert.Nil(t, u.OTP)
}

func TestNewPage(t *testing.T) {
	page := NewPage([]int{1, 2}, PageRequest{Page: 1, Size: 2}, 5)

	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(5), page.TotalElements)
	assert.Equal(t, 2, PageRequest{Page: 1, Size: 2}.Offset())

	assert.Equal(t, 0, NewPage[int](nil, PageRequest{Size: 0}, 5).TotalPages)
}

func TestParseSortDirection(t *testing.T) {
	d, ok := ParseSortDirection("DESC")
	assert.True(t, ok)
	assert.Equal(t, SortDesc, d)

	_, ok = ParseSortDirection("sideways")
	assert.False(t, ok)
}
