package fixtures

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/querybench/querybench/types"
	"github.com/querybench/querybench/utils"
)

var (
	firstNames = []string{"Ada", "Grace", "Linus", "Dennis", "Barbara", "Ken", "Margaret", "Rob", "Donald", "Frances"}
	lastNames  = []string{"Lovelace", "Hopper", "Torvalds", "Ritchie", "Liskov", "Thompson", "Hamilton", "Pike", "Knuth", "Allen"}
	nouns      = []string{"Widget", "Gadget", "Sprocket", "Gizmo", "Doohickey", "Contraption", "Apparatus", "Device"}
	categories = []string{"Electronics", "Books", "Toys", "Garden", "Tools", "Clothing"}
)

// Generator produces random records for the harness schema. Usernames,
// emails and product names carry a ULID suffix so repeated runs against
// the same database never collide on unique columns.
type Generator struct {
	rand *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rand: rand.New(rand.NewSource(seed))}
}

func (g *Generator) User() types.Record {
	tag := strings.ToLower(utils.ULID())
	return types.Record{
		"username":      fmt.Sprintf("user_%s", tag),
		"email":         fmt.Sprintf("%s@example.com", tag),
		"password_hash": fmt.Sprintf("%x", g.rand.Uint64()),
		"first_name":    firstNames[g.rand.Intn(len(firstNames))],
		"last_name":     lastNames[g.rand.Intn(len(lastNames))],
		"age":           18 + g.rand.Intn(63),
		"is_active":     g.rand.Intn(100) < 80,
	}
}

func (g *Generator) Product() types.Record {
	tag := strings.ToLower(utils.ULID())
	return types.Record{
		"name":         fmt.Sprintf("%s %s", nouns[g.rand.Intn(len(nouns))], tag[:8]),
		"description":  "generated product for automated testing",
		"price":        float64(g.rand.Intn(99900)+100) / 100,
		"stock":        g.rand.Intn(500),
		"category":     categories[g.rand.Intn(len(categories))],
		"is_available": g.rand.Intn(100) < 90,
	}
}

func (g *Generator) Order(userID, productID int64) types.Record {
	quantity := 1 + g.rand.Intn(5)
	return types.Record{
		"user_id":     userID,
		"product_id":  productID,
		"quantity":    quantity,
		"total_price": float64(quantity) * (float64(g.rand.Intn(9900)+100) / 100),
		"status":      "pending",
	}
}

// BulkUsers returns the column list and value rows for an InsertMany
// call.
func (g *Generator) BulkUsers(count int) ([]string, [][]any) {
	columns := []string{"username", "email", "password_hash", "first_name", "last_name", "age", "is_active"}
	rows := make([][]any, 0, count)
	for i := 0; i < count; i++ {
		user := g.User()
		rows = append(rows, user.Values(columns))
	}
	return columns, rows
}

// BulkProducts returns the column list and value rows for an InsertMany
// call.
func (g *Generator) BulkProducts(count int) ([]string, [][]any) {
	columns := []string{"name", "description", "price", "stock", "category", "is_available"}
	rows := make([][]any, 0, count)
	for i := 0; i < count; i++ {
		product := g.Product()
		rows = append(rows, product.Values(columns))
	}
	return columns, rows
}
