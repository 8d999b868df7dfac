package validate

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestEmail(t *testing.T) {
	for _, ok := range []string{"ana@example.com", "A.B+c@sub.domain.mx", "x@y.z"} {
		assert.Nil(t, Email("email", ok), ok)
	}
	for _, bad := range []string{"", "ana", "ana@", "ana@example", "@example.com", "an a@example.com", "ana@exa mple.com", "a@@b.com"} {
		fe := Email("email", bad)
		require.NotNil(t, fe, bad)
		assert.Equal(t, "email", fe.Field)
		assert.Equal(t, "Invalid email format.", fe.Message)
	}
}

func TestPasswordViolationsListsExactlyBrokenRules(t *testing.T) {
	const (
		length  = "Password must be at least 8 characters long."
		lower   = "Password must include at least one lowercase letter."
		upper   = "Password must include at least one uppercase letter."
		number  = "Password must include at least one number."
		special = "Password must include at least one special character (@$!%*?&)."
	)
	cases := []struct {
		pw   string
		want []string
	}{
		{"Secret1!x", nil},
		{"Se1!", []string{length}},
		{"SECRET1!X", []string{lower}},
		{"secret1!x", []string{upper}},
		{"Secret!!x", []string{number}},
		{"Secret12x", []string{special}},
		{"Secret1#x", []string{special}},
		{"", []string{length, lower, upper, number, special}},
		{"abcdefgh", []string{upper, number, special}},
	}
	for _, c := range cases {
		if diff := cmp.Diff(c.want, PasswordViolations(c.pw)); diff != "" {
			t.Errorf("PasswordViolations(%q) mismatch (-want +got):\n%s", c.pw, diff)
		}
	}
}

func TestPasswordFieldError(t *testing.T) {
	assert.Nil(t, Password("password", "Valid1@pw"))
	fe := Password("password", "short")
	require.NotNil(t, fe)
	assert.Equal(t, "password", fe.Field)
	assert.Equal(t, "Password does not meet strength requirements.", fe.Message)
	assert.Len(t, fe.Details, 4)
}

func TestAgeIsCalendarExact(t *testing.T) {
	now := time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)
	for _, n := range []int{10, 13, 18, 120} {
		birth := time.Date(now.Year()-n, now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		assert.Equal(t, n, Age(birth, now), "anniversary for %d", n)
		assert.Equal(t, n-1, Age(birth.AddDate(0, 0, 1), now), "one day short for %d", n)
	}
	// a month not yet reached
	assert.Equal(t, 9, Age(time.Date(2016, time.November, 1, 0, 0, 0, 0, time.UTC), now))
}

func TestAgeLeapDay(t *testing.T) {
	birth := time.Date(2012, time.February, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 13, Age(birth, time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 14, Age(birth, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)))
}

func TestBirthDate(t *testing.T) {
	now := time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		in   string
		want string
	}{
		{"2000-01-01", ""},
		{"2016-10-18", ""},
		{"2016-10-19", "You must be at least 10 years old to register."},
		{"1906-10-17", ""},
		{"1905-10-18", "Invalid birth date (too old)."},
		{"18/10/2000", "Invalid birth date format. Please use YYYY-MM-DD."},
		{"2000-1-1", "Invalid birth date format. Please use YYYY-MM-DD."},
		{"2001-02-30", "Invalid birth date provided."},
		{"2030-01-01", "You must be at least 10 years old to register."},
	}
	for _, c := range cases {
		fe := BirthDate("birthdate", c.in, now)
		if c.want == "" {
			assert.Nil(t, fe, c.in)
			continue
		}
		require.NotNil(t, fe, c.in)
		assert.Equal(t, "birthdate", fe.Field)
		assert.Equal(t, c.want, fe.Message, c.in)
	}
}

func TestGender(t *testing.T) {
	assert.Nil(t, Gender("gender", "Female"))
	assert.Nil(t, Gender("gender", "prefer_not_to_say"))
	fe := Gender("gender", "robot")
	require.NotNil(t, fe)
	assert.Equal(t, "Invalid gender selected.", fe.Message)
}

func TestOneOf(t *testing.T) {
	assert.Nil(t, OneOf("rol", "admin", "bad role", Roles...))
	assert.NotNil(t, OneOf("rol", "Admin", "bad role", Roles...))
	assert.Nil(t, OneOf("status", "archived", "bad", MessageStatuses...))
	assert.NotNil(t, OneOf("status", "", "bad", MessageStatuses...))
}

func TestID(t *testing.T) {
	id, fe := ID("42", "user")
	assert.Nil(t, fe)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "abc", "4.2", "0x10", "12abc"} {
		_, fe := ID(bad, "message")
		require.NotNil(t, fe, bad)
		assert.Equal(t, "Invalid message ID format.", fe.Message)
	}
}

func TestMessageBody(t *testing.T) {
	assert.NotNil(t, MessageBody("message", "too short"))
	assert.Nil(t, MessageBody("message", "ten chars!"))
	assert.Nil(t, MessageBody("message", strings.Repeat("ñ", MaxMessageLen)))
	fe := MessageBody("message", strings.Repeat("a", MaxMessageLen+1))
	require.NotNil(t, fe)
	assert.Equal(t, "Message is too long (max 5000 characters).", fe.Message)
}

func TestCollectKeepsOrder(t *testing.T) {
	errs := Collect(nil, Email("email", "nope"), nil, Gender("gender", "x"))
	require.Len(t, errs, 2)
	assert.Equal(t, "email", errs.First().Field)
	assert.Nil(t, Collect(nil, nil).First())
}
