package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/datpham0412/yourlocalshop/pkg/errors"
)

// fakeRepo 内存仓储,按邮箱索引
type fakeRepo struct {
	byEmail map[string]*Account
	nextID  uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byEmail: map[string]*Account{}, nextID: 1}
}

func (r *fakeRepo) Create(_ context.Context, acc *Account) error {
	if _, ok := r.byEmail[acc.Email]; ok {
		return apperrors.ErrEmailDuplicate
	}
	acc.ID = r.nextID
	r.nextID++
	r.byEmail[acc.Email] = acc
	return nil
}

func (r *fakeRepo) FindByID(_ context.Context, id uint) (*Account, error) {
	for _, acc := range r.byEmail {
		if acc.ID == id {
			return acc, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

func (r *fakeRepo) FindByEmail(_ context.Context, email string) (*Account, error) {
	acc, ok := r.byEmail[email]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	return acc, nil
}

func (r *fakeRepo) Update(_ context.Context, acc *Account) error {
	r.byEmail[acc.Email] = acc
	return nil
}

func TestService_Register(t *testing.T) {
	svc := NewService(newFakeRepo())

	acc, err := svc.Register(context.Background(), "alice@example.com", "passw0rd1", "Alice Chen", "0400000001", "1 Swanston St, Melbourne")
	require.NoError(t, err)

	assert.NotZero(t, acc.ID)
	assert.Equal(t, RoleCustomer, acc.Role)
	// 密码不落明文
	assert.NotEqual(t, "passw0rd1", acc.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(acc.Password), []byte("passw0rd1")))
}

func TestService_RegisterValidation(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		accName  string
	}{
		{"邮箱格式错误", "not-an-email", "passw0rd1", "Alice Chen"},
		{"密码过短", "alice@example.com", "p1", "Alice Chen"},
		{"密码缺少数字", "alice@example.com", "passwords", "Alice Chen"},
		{"密码缺少字母", "alice@example.com", "12345678", "Alice Chen"},
		{"姓名过短", "alice@example.com", "passw0rd1", "A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.email, tt.password, tt.accName, "", "")
			assert.Error(t, err)
		})
	}
}

func TestService_RegisterDuplicateEmail(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice@example.com", "passw0rd1", "Alice Chen", "", "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice@example.com", "passw0rd2", "Alice Wang", "", "")
	assert.ErrorIs(t, err, apperrors.ErrEmailDuplicate)
}

func TestService_Login(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice@example.com", "passw0rd1", "Alice Chen", "", "")
	require.NoError(t, err)

	acc, err := svc.Login(ctx, "alice@example.com", "passw0rd1")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", acc.Email)

	_, err = svc.Login(ctx, "alice@example.com", "wrong-pass1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)

	_, err = svc.Login(ctx, "nobody@example.com", "passw0rd1")
	assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
}
