package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmontero22c/BRM-Backend/internal/domain"
	"github.com/jmontero22c/BRM-Backend/internal/repo"
	"github.com/jmontero22c/BRM-Backend/internal/service"
	"github.com/jmontero22c/BRM-Backend/internal/validate"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	jwter := newJWTer()
	svc := service.NewAuthService(repo.NewUserRepo(db), jwter)

	res, err := svc.Register(ctx(), &validate.RegisterInput{
		Name: "Ana", Email: "ana@test.com", Password: "secreto",
	})
	require.NoError(t, err)
	assert.Equal(t, "Usuario registrado exitosamente", res.Message)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, domain.RoleCustomer, res.User.Role)

	claims, err := jwter.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UID)
	assert.Equal(t, string(domain.RoleCustomer), claims.Role)

	login, err := svc.Login(ctx(), &validate.LoginInput{Email: "ana@test.com", Password: "secreto"})
	require.NoError(t, err)
	assert.Equal(t, "Inicio de sesión exitoso", login.Message)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, res.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewAuthService(repo.NewUserRepo(db), newJWTer())

	_, err := svc.Register(ctx(), &validate.RegisterInput{
		Name: "Ana", Email: "ana@test.com", Password: "secreto",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx(), &validate.RegisterInput{
		Name: "Otra", Email: "ana@test.com", Password: "secreto2",
	})
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 400, de.Code)
	assert.Equal(t, "El email ya está registrado", de.Error())

	// 先注册的那个照常能登录
	_, err = svc.Login(ctx(), &validate.LoginInput{Email: "ana@test.com", Password: "secreto"})
	require.NoError(t, err)
}

func TestLoginFailures(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewAuthService(repo.NewUserRepo(db), newJWTer())

	_, err := svc.Register(ctx(), &validate.RegisterInput{
		Name: "Ana", Email: "ana@test.com", Password: "secreto",
	})
	require.NoError(t, err)

	var de *domain.Error
	_, err = svc.Login(ctx(), &validate.LoginInput{Email: "nadie@test.com", Password: "secreto"})
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 400, de.Code)
	assert.Equal(t, "El correo electrónico no está registrado", de.Error())

	_, err = svc.Login(ctx(), &validate.LoginInput{Email: "ana@test.com", Password: "mala"})
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 400, de.Code)
	assert.Equal(t, "Contraseña incorrecta", de.Error())
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewAuthService(repo.NewUserRepo(db), newJWTer())

	var de *domain.Error
	_, err := svc.Register(ctx(), &validate.RegisterInput{
		Name: "X", Email: "no-es-email", Password: "123", Role: "Root",
	})
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 400, de.Code)
	assert.Contains(t, de.Error(), "El email es inválido o está vacío.")
	assert.Contains(t, de.Error(), "La contraseña debe tener al menos 6 caracteres.")
	assert.Contains(t, de.Error(), "El rol debe ser")
}

func TestPasswordStoredHashed(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewAuthService(repo.NewUserRepo(db), newJWTer())

	res, err := svc.Register(ctx(), &validate.RegisterInput{
		Name: "Ana", Email: "ana@test.com", Password: "secreto",
	})
	require.NoError(t, err)

	var u domain.User
	require.NoError(t, db.First(&u, res.User.ID).Error)
	assert.NotEqual(t, "secreto", u.PasswordHash)
	assert.NotEmpty(t, u.PasswordHash)
}
