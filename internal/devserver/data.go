package devserver

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/reynaldiarya/flashpos/internal/models"
	"github.com/reynaldiarya/flashpos/pkg/auth"
	"github.com/reynaldiarya/flashpos/pkg/collection"
)

// demoUser is the seeded login for local work.
const (
	DemoEmail    = "admin@flashpos.local"
	DemoPassword = "password"
)

type user struct {
	models.User
	PasswordHash string
}

// data is the in-memory database behind the dev backend. One lock guards
// everything; this server exists for local work and tests, not load.
type data struct {
	mu sync.Mutex

	users        []user
	customers    []models.Customer
	categories   []models.ProductCategory
	products     []models.Product
	transactions []models.Transaction

	nextID map[string]int64
}

func newData() *data {
	d := &data{nextID: map[string]int64{}}
	d.seed()
	return d
}

func (d *data) id(table string) int64 {
	d.nextID[table]++
	return d.nextID[table]
}

func (d *data) seed() {
	hash, _ := auth.HashPassword(DemoPassword)
	d.users = []user{{
		User:         models.User{ID: d.id("users"), Name: "Admin", Email: DemoEmail},
		PasswordHash: hash,
	}}

	for _, name := range []string{"Andi Wijaya", "Budi Santoso", "Citra Lestari"} {
		d.customers = append(d.customers, models.Customer{
			ID:    d.id("customers"),
			Name:  name,
			Phone: fmt.Sprintf("08120000%04d", len(d.customers)+1),
		})
	}

	drinks := models.ProductCategory{ID: d.id("categories"), Name: "Drinks", Description: "Bottled and canned drinks"}
	snacks := models.ProductCategory{ID: d.id("categories"), Name: "Snacks", Description: "Packaged snacks"}
	d.categories = []models.ProductCategory{drinks, snacks}

	seedProducts := []struct {
		cat   int64
		name  string
		price int64
		stock int64
	}{
		{drinks.ID, "Mineral Water 600ml", 5000, 120},
		{drinks.ID, "Iced Tea Bottle", 8000, 60},
		{snacks.ID, "Potato Chips", 12000, 45},
		{snacks.ID, "Chocolate Bar", 15000, 30},
	}
	for _, p := range seedProducts {
		d.products = append(d.products, models.Product{
			ID:                d.id("products"),
			ProductCategoryID: p.cat,
			Name:              p.name,
			Price:             p.price,
			Stock:             p.stock,
		})
	}
}

func (d *data) findUser(email string) (user, bool) {
	return collection.First(d.users, func(u user) bool { return u.Email == email })
}

func (d *data) userByID(id int64) (user, bool) {
	return collection.First(d.users, func(u user) bool { return u.ID == id })
}

func (d *data) customerByID(id int64) (models.Customer, bool) {
	return collection.First(d.customers, func(c models.Customer) bool { return c.ID == id })
}

func (d *data) categoryByID(id int64) (models.ProductCategory, bool) {
	return collection.First(d.categories, func(c models.ProductCategory) bool { return c.ID == id })
}

func (d *data) productByID(id int64) (models.Product, bool) {
	return collection.First(d.products, func(p models.Product) bool { return p.ID == id })
}

func (d *data) transactionByID(id int64) (models.Transaction, bool) {
	return collection.First(d.transactions, func(t models.Transaction) bool { return t.ID == id })
}

// nextCode builds a human-readable transaction code like TRX-20260830-0001.
func (d *data) nextCode(now time.Time) string {
	return fmt.Sprintf("TRX-%s-%04d", now.Format("20060102"), len(d.transactions)+1)
}

func matches(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
