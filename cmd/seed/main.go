// Утилита первичного наполнения магазина: демо-каталог и выдача
// админских прав. Ходит в базу напрямую, мимо HTTP-слоя.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	config "github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/storefront/internal/repository/pgdb/converter/generated"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/DRSN-tech/storefront/pkg/postgres"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const seedTimeout = 30 * time.Second

type demoProduct struct {
	name        string
	description string
	priceCents  int64
	saleCents   int64
	category    string
	stock       int
}

var demoCatalog = []demoProduct{
	{name: "Керамическая кружка", description: "Кружка ручной работы, 350 мл", priceCents: 1200, category: "kitchen", stock: 40},
	{name: "Френч-пресс", description: "Стеклянный френч-пресс на 600 мл", priceCents: 2900, saleCents: 2400, category: "kitchen", stock: 15},
	{name: "Хлопковая футболка", description: "Базовая футболка, плотный хлопок", priceCents: 1900, category: "apparel", stock: 120},
	{name: "Худи оверсайз", description: "Худи с начёсом, унисекс", priceCents: 4900, saleCents: 3900, category: "apparel", stock: 35},
	{name: "Настольная лампа", description: "Лампа с регулировкой яркости", priceCents: 3500, category: "home", stock: 22},
	{name: "Ароматическая свеча", description: "Соевый воск, кедр и цитрус", priceCents: 900, category: "home", stock: 80},
	{name: "Блокнот в точку", description: "A5, 120 страниц, твёрдая обложка", priceCents: 700, category: "stationery", stock: 200},
	{name: "Гелевые ручки, набор", description: "6 цветов, 0.5 мм", priceCents: 500, category: "stationery", stock: 150},
}

func main() {
	log := logger.NewSlogLogger()

	rootCmd := &cobra.Command{
		Use:           "seed",
		Short:         "Первичное наполнение базы магазина",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newCatalogCmd(log), newAdminCmd(log))

	if err := rootCmd.Execute(); err != nil {
		log.Errorf(err, "seed failed")
		os.Exit(1)
	}
}

func newCatalogCmd(log logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Загрузка демо-каталога товаров",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connect(log)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), seedTimeout)
			defer cancel()

			repo := pgdb.NewProductRepo(db.Pool, &pgdbConv.ProductConverterImpl{})

			for _, dp := range demoCatalog {
				product := domain.NewProduct(uuid.NewString(), dp.name, dp.description, dp.priceCents, dp.category)
				product.Stock = dp.stock
				if dp.saleCents > 0 {
					sale := dp.saleCents
					product.OnSale = true
					product.SalePriceCents = &sale
				}

				if _, err := repo.Create(ctx, product); err != nil {
					return fmt.Errorf("create %q: %w", dp.name, err)
				}
				log.Infof("seeded product %q (%s)", dp.name, product.ID)
			}

			log.Infof("catalog seeded: %d products", len(demoCatalog))
			return nil
		},
	}
}

func newAdminCmd(log logger.Logger) *cobra.Command {
	var email, displayName string

	cmd := &cobra.Command{
		Use:   "admin <user-id>",
		Short: "Создание профиля и выдача админского флага",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return errors.New("--email is required")
			}

			db, err := connect(log)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), seedTimeout)
			defer cancel()

			repo := pgdb.NewUserRepo(db.Pool, &pgdbConv.UserConverterImpl{})

			userID := args[0]
			if _, err := repo.Upsert(ctx, domain.NewUser(userID, email, displayName)); err != nil {
				return fmt.Errorf("upsert user %s: %w", userID, err)
			}
			if err := repo.SetAdmin(ctx, userID, true); err != nil {
				return fmt.Errorf("set admin %s: %w", userID, err)
			}

			log.Infof("user %s promoted to admin", userID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "e-mail пользователя")
	cmd.Flags().StringVar(&displayName, "name", "", "отображаемое имя")

	return cmd
}

func connect(log logger.Logger) (*postgres.PgDatabase, error) {
	dbCfg, err := config.LoadDB(log)
	if err != nil {
		return nil, err
	}

	db, err := postgres.Connect(dbCfg)
	if err != nil {
		return nil, err
	}

	if err := db.RunMigrations(log); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
