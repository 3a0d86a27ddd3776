//go:build unit

package user_test

import (
	"testing"
	"time"

	"hall-allocation/internal/domain/user"
	"hall-allocation/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {

		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		now := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
		expected, err := user.NewUser("Test Lecturer", email, "hashed_password", user.RoleLecturer, nil, now)
		require.NoError(t, err)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Test Lecturer", actual.FullName())
		assert.Equal(t, user.RoleLecturer, actual.Role())
		assert.Nil(t, actual.RegistrationNumber())
		assert.Nil(t, actual.LastLogin())
		assert.Equal(t, now, actual.CreatedAt())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "大文字と前後の空白は正規化されてOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("  Valid@Example.COM ") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "admin ロールOK",
				mutate: func(b *builder.UserBuilder) { b.AsAdmin() },
			},
			{
				name:   "lecturer ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("lecturer") },
			},
			{
				name:   "student ロールOK",
				mutate: func(b *builder.UserBuilder) { b.AsStudent("REG-001") },
			},
			{
				name:   "無効なロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("operator") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "空のロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("氏名検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "空の氏名NG",
				mutate: func(b *builder.UserBuilder) { b.WithFullName("") },
				errIs:  user.ErrFullNameRequired,
			},
			{
				name:   "空白のみの氏名NG",
				mutate: func(b *builder.UserBuilder) { b.WithFullName("   ") },
				errIs:  user.ErrFullNameRequired,
			},
		})
	})

	t.Run("学籍番号検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "学生で学籍番号有りOK",
				mutate: func(b *builder.UserBuilder) { b.AsStudent("REG-001") },
			},
			{
				name: "学生で学籍番号無しNG",
				mutate: func(b *builder.UserBuilder) {
					b.WithRole("student").WithoutRegistrationNumber()
				},
				errIs: user.ErrRegistrationNumberRequired,
			},
			{
				name:   "学生で空白の学籍番号NG",
				mutate: func(b *builder.UserBuilder) { b.AsStudent("  ") },
				errIs:  user.ErrRegistrationNumberRequired,
			},
		})

		t.Run("学生以外の学籍番号は破棄される", func(t *testing.T) {
			actual, err := builder.NewUserBuilder().WithRegistrationNumber("REG-001").BuildDomain()
			require.NoError(t, err)
			assert.Nil(t, actual.RegistrationNumber())
		})

		t.Run("学籍番号の前後の空白は除去される", func(t *testing.T) {
			actual, err := builder.NewUserBuilder().AsStudent(" REG-001 ").BuildDomain()
			require.NoError(t, err)
			require.NotNil(t, actual.RegistrationNumber())
			assert.Equal(t, "REG-001", *actual.RegistrationNumber())
		})
	})
}

func TestPassword(t *testing.T) {
	t.Run("8文字以上OK", func(t *testing.T) {
		p, err := user.NewPassword("password")
		require.NoError(t, err)
		assert.Equal(t, "password", p.Value())
	})

	t.Run("8文字未満NG", func(t *testing.T) {
		_, err := user.NewPassword("short")
		require.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
