// Seed de usuarios de referencia para entornos de desarrollo.
// Idempotente: si el username ya existe, se omite.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/estoque-api/internal/domain/entity"
	"github.com/tu-usuario/estoque-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/estoque-api/pkg/config"
	"github.com/tu-usuario/estoque-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	Username string
	Password string
	Name     string
	Role     string
}

// Lista de referencia del sistema original. Las passwords se hashean al insertar;
// nunca se persisten en texto plano.
var seedUsers = []seedUser{
	{Username: "rodrigo", Password: "admin123", Name: "Rodrigo", Role: entity.RoleAdmin},
	{Username: "charles", Password: "visual123", Name: "Charles", Role: entity.RoleViewer},
	{Username: "nelson", Password: "gestor123", Name: "Nelson", Role: entity.RoleManager},
	{Username: "bruno", Password: "gestor123", Name: "Bruno", Role: entity.RoleManager},
	{Username: "mauro", Password: "gestor123", Name: "Mauro", Role: entity.RoleManager},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	repo := postgres.NewUserRepository(pool)
	for _, su := range seedUsers {
		existing, err := repo.GetByUsername(su.Username)
		if err != nil {
			log.Fatal().Err(err).Str("username", su.Username).Msg("consultar usuario")
		}
		if existing != nil {
			log.Info().Str("username", su.Username).Msg("ya existe, se omite")
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear password")
		}
		now := time.Now()
		user := &entity.User{
			ID:           uuid.New().String(),
			Username:     su.Username,
			Name:         su.Name,
			PasswordHash: string(hash),
			Role:         su.Role,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := repo.Create(user); err != nil {
			log.Fatal().Err(err).Str("username", su.Username).Msg("crear usuario")
		}
		log.Info().Str("username", su.Username).Str("role", su.Role).Msg("usuario creado")
	}
	log.Info().Msg("seed completado")
}
