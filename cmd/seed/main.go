package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/parkampus-dev/parkampus/backend/internal/config"
	"github.com/parkampus-dev/parkampus/backend/internal/repository"
	"github.com/parkampus-dev/parkampus/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operación a ejecutar (1: insertar usuarios aleatorios, 2: insertar parqueaderos aleatorios)")
	flag.IntVar(&n, "n", 5, "cantidad de registros a insertar")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// cargar configuración
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("no se pudo cargar la configuración", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// crear el pool de conexiones
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("no se pudo crear el pool de conexiones", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open solo crea el pool, hay que hacer ping explícito
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("no se pudo conectar a la base de datos", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 1:
		for i := 0; i < n; i++ {
			user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, cfg.Email.UserDomain)
			if err != nil {
				logger.Error("no se pudo generar el usuario aleatorio", "error", err)
				continue
			}
			if err := repo.CreateUser(user); err != nil {
				logger.Error("no se pudo insertar el usuario", "error", err, "email", user.Email)
				continue
			}
			logger.Info("usuario insertado", "id", user.ID, "email", user.Email, "user_type", user.UserType)
		}
	case 2:
		for i := 0; i < n; i++ {
			lot := utils.GenerateRandomParkingLot()
			if err := repo.CreateParkingLot(lot); err != nil {
				logger.Error("no se pudo insertar el parqueadero", "error", err, "name", lot.Name)
				continue
			}
			logger.Info("parqueadero insertado", "id", lot.ID, "name", lot.Name)
		}
	default:
		logger.Error("operación desconocida", "op", op)
		os.Exit(1)
	}
}
