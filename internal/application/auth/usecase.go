package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/ayoubkh/noorinv-api/internal/application/dto"
	"github.com/ayoubkh/noorinv-api/internal/domain"
	"github.com/ayoubkh/noorinv-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase acceso con el PIN compartido de la asociación.
//
// No es una frontera de seguridad real (un PIN de 4 dígitos compartido), solo
// la misma barrera ligera de la aplicación original; aún así el PIN nunca se
// guarda en claro: se compara contra un hash bcrypt calculado al arrancar.
type AuthUseCase struct {
	pinHash []byte
	jwtCfg  JWTConfig
}

// NewAuthUseCase construye el caso de uso hasheando el PIN configurado.
func NewAuthUseCase(pin string, jwtCfg JWTConfig) (*AuthUseCase, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthUseCase{pinHash: hash, jwtCfg: jwtCfg}, nil
}

// Login verifica el PIN y emite el token de sesión.
// PIN incorrecto → domain.ErrUnauthorized.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.PIN == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := bcrypt.CompareHashAndPassword(uc.pinHash, []byte(in.PIN)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, ExpiresIn: uc.jwtCfg.ExpMinutes * 60}, nil
}
