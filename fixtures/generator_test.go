package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorUsersUnique(t *testing.T) {
	generator := NewGenerator(42)

	usernames := map[string]bool{}
	emails := map[string]bool{}
	for i := 0; i < 100; i++ {
		user := generator.User()
		username := user["username"].(string)
		email := user["email"].(string)

		require.False(t, usernames[username], "duplicate username %s", username)
		require.False(t, emails[email], "duplicate email %s", email)
		usernames[username] = true
		emails[email] = true

		age := user["age"].(int)
		assert.GreaterOrEqual(t, age, 18)
		assert.LessOrEqual(t, age, 80)
	}
}

func TestGeneratorProduct(t *testing.T) {
	product := NewGenerator(7).Product()

	assert.NotEmpty(t, product["name"])
	price := product["price"].(float64)
	assert.Greater(t, price, 0.0)
	assert.Contains(t, categories, product["category"])
}

func TestGeneratorOrder(t *testing.T) {
	order := NewGenerator(7).Order(3, 9)

	assert.EqualValues(t, 3, order["user_id"])
	assert.EqualValues(t, 9, order["product_id"])
	assert.Equal(t, "pending", order["status"])
	quantity := order["quantity"].(int)
	assert.GreaterOrEqual(t, quantity, 1)
	assert.LessOrEqual(t, quantity, 5)
}

func TestBulkUsersShape(t *testing.T) {
	columns, rows := NewGenerator(1).BulkUsers(5)

	assert.Equal(t, []string{"username", "email", "password_hash", "first_name", "last_name", "age", "is_active"}, columns)
	require.Len(t, rows, 5)
	for _, row := range rows {
		assert.Len(t, row, len(columns))
	}
}

func TestValidRecordsAreFreshCopies(t *testing.T) {
	first := ValidUser()
	first["username"] = "mutated"
	assert.Equal(t, "testuser", ValidUser()["username"])

	product := ValidProduct()
	assert.Equal(t, 29.99, product["price"])
}
