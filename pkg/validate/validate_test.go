package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customerInput struct {
	Name  string `json:"name"  validate:"required,min=2,max=100"`
	Phone string `json:"phone" validate:"required,min=6,max=20"`
}

type productInput struct {
	CategoryID int64  `json:"product_category_id" validate:"required,gt=0"`
	Name       string `json:"name"                validate:"required,min=2,max=100"`
	Price      int64  `json:"price"               validate:"required,gt=0"`
	Stock      int64  `json:"stock"               validate:"gte=0"`
}

func TestValidInputHasNoErrors(t *testing.T) {
	errs := Struct(customerInput{Name: "Budi", Phone: "081234567890"})
	assert.False(t, HasErrors(errs))
	assert.Empty(t, errs)
}

func TestRequiredFields(t *testing.T) {
	errs := Struct(customerInput{})
	require.True(t, HasErrors(errs))
	assert.Equal(t, "The name field is required.", errs["name"])
	assert.Equal(t, "The phone field is required.", errs["phone"])
}

func TestRequiredTreatsWhitespaceAsEmpty(t *testing.T) {
	errs := Struct(customerInput{Name: "   ", Phone: "081234567890"})
	assert.Contains(t, errs, "name")
}

func TestStringLengthBounds(t *testing.T) {
	errs := Struct(customerInput{Name: "B", Phone: "081234567890"})
	assert.Equal(t, "The name must be at least 2.", errs["name"])

	errs = Struct(customerInput{Name: "Budi", Phone: "12345"})
	assert.Equal(t, "The phone must be at least 6.", errs["phone"])
}

func TestNumericBounds(t *testing.T) {
	errs := Struct(productInput{CategoryID: 1, Name: "Chips", Price: 0})
	assert.Equal(t, "The price field is required.", errs["price"], "zero fails required before gt")

	errs = Struct(productInput{CategoryID: 1, Name: "Chips", Price: 12000, Stock: 5})
	assert.Empty(t, errs)
}

func TestFirstFailingRuleWins(t *testing.T) {
	errs := Struct(customerInput{Name: ""})
	assert.Equal(t, "The name field is required.", errs["name"], "only the first failing rule is reported")
}

func TestEmailRule(t *testing.T) {
	type loginInput struct {
		Email string `json:"email" validate:"required,email"`
	}

	assert.Empty(t, Struct(loginInput{Email: "admin@flashpos.local"}))

	errs := Struct(loginInput{Email: "not-an-email"})
	assert.Equal(t, "The email must be a valid email address.", errs["email"])
}

func TestNullableSkipsRemainingRules(t *testing.T) {
	type input struct {
		Note string `json:"note" validate:"nullable,min=5"`
	}

	assert.Empty(t, Struct(input{}), "empty nullable fields skip validation")

	errs := Struct(input{Note: "hi"})
	assert.Contains(t, errs, "note", "present nullable fields are still validated")
}

func TestPointerAndNonStructInputs(t *testing.T) {
	in := &customerInput{Name: "Budi", Phone: "081234567890"}
	assert.Empty(t, Struct(in), "pointers to structs are dereferenced")

	assert.Empty(t, Struct("not a struct"))
	assert.Empty(t, Struct(42))
}

func TestErrorsKeyedByJSONName(t *testing.T) {
	type input struct {
		FullName string `json:"full_name" validate:"required"`
		NoTag    string `validate:"required"`
	}

	errs := Struct(input{})
	assert.Contains(t, errs, "full_name")
	assert.Contains(t, errs, "notag", "fields without a json tag fall back to the lowercased name")
}
