package app

import (
	"embed"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/talkincode/catalogd/internal/domain"
)

//go:embed seed/*.csv
var seedFS embed.FS

type productSeed struct {
	Name        string  `csv:"name"`
	Category    string  `csv:"category"`
	Description string  `csv:"description"`
	Price       float64 `csv:"price"`
	Stock       int     `csv:"stock"`
}

type userSeed struct {
	Name string `csv:"name"`
	Age  int    `csv:"age"`
}

// seed fills the collections with the default catalog
func (a *Application) seed() error {
	var products []productSeed
	if err := readSeed("seed/products.csv", &products); err != nil {
		return err
	}
	for i, p := range products {
		if _, err := a.products.Create(domain.Fields{
			"name":        p.Name,
			"category":    p.Category,
			"description": p.Description,
			"price":       p.Price,
			"stock":       p.Stock,
		}); err != nil {
			return errors.Wrapf(err, "seed product row %d", i+1)
		}
	}

	var users []userSeed
	if err := readSeed("seed/users.csv", &users); err != nil {
		return err
	}
	for i, u := range users {
		if _, err := a.users.Create(domain.Fields{"name": u.Name, "age": u.Age}); err != nil {
			return errors.Wrapf(err, "seed user row %d", i+1)
		}
	}

	zap.L().Info("initialized default catalog",
		zap.Int("products", a.products.Len()),
		zap.Int("users", a.users.Len()))
	return nil
}

func readSeed(name string, out interface{}) error {
	data, err := seedFS.ReadFile(name)
	if err != nil {
		return errors.Wrap(err, "read "+strconv.Quote(name))
	}
	if err := gocsv.UnmarshalBytes(data, out); err != nil {
		return errors.Wrapf(err, "parse %s", name)
	}
	return nil
}
