package schema_test

import (
	"strings"
	"testing"

	"github.com/vladislavdragonenkov/ecrs/internal/schema"
)

func TestCustomer_Valid(t *testing.T) {
	in, errs := schema.DecodeCustomer(strings.NewReader(`{"name":"A","email":"a@x.com","phone":"123"}`))
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if in.Name != "A" || in.Email != "a@x.com" || in.Phone != "123" {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestCustomer_MissingFieldsAreAllReported(t *testing.T) {
	_, errs := schema.DecodeCustomer(strings.NewReader(`{}`))
	if errs == nil {
		t.Fatal("expected field errors")
	}
	for _, field := range []string{"name", "email", "phone"} {
		if _, ok := errs[field]; !ok {
			t.Fatalf("expected error for field %q, got %v", field, errs)
		}
	}
}

func TestCustomer_PhoneTooLong(t *testing.T) {
	_, errs := schema.DecodeCustomer(strings.NewReader(`{"name":"A","email":"a@x.com","phone":"1234567890123456"}`))
	if errs == nil {
		t.Fatal("expected field errors")
	}
	if _, ok := errs["phone"]; !ok {
		t.Fatalf("expected phone error, got %v", errs)
	}
}

func TestProduct_NegativePriceRejected(t *testing.T) {
	_, errs := schema.DecodeProduct(strings.NewReader(`{"name":"soap","price":-1}`))
	if errs == nil {
		t.Fatal("expected field errors")
	}
	if _, ok := errs["price"]; !ok {
		t.Fatalf("expected price error, got %v", errs)
	}
}

func TestProduct_EmptyNameRejected(t *testing.T) {
	_, errs := schema.DecodeProduct(strings.NewReader(`{"name":"","price":1}`))
	if errs == nil {
		t.Fatal("expected field errors")
	}
	if _, ok := errs["name"]; !ok {
		t.Fatalf("expected name error, got %v", errs)
	}
}

func TestProduct_ZeroPriceAccepted(t *testing.T) {
	in, errs := schema.DecodeProduct(strings.NewReader(`{"name":"freebie","price":0}`))
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if in.Price != 0 {
		t.Fatalf("expected price 0, got %g", in.Price)
	}
}

func TestProduct_WrongTypesReported(t *testing.T) {
	_, errs := schema.DecodeProduct(strings.NewReader(`{"name":7,"price":"cheap"}`))
	if errs == nil {
		t.Fatal("expected field errors")
	}
	if len(errs) != 2 {
		t.Fatalf("expected both fields reported, got %v", errs)
	}
}

func TestOrder_Valid(t *testing.T) {
	in, errs := schema.DecodeOrder(strings.NewReader(`{"date":"2024-02-29","customer_id":1,"product_ids":[1,2]}`))
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if in.Date.Format("2006-01-02") != "2024-02-29" {
		t.Fatalf("unexpected date: %v", in.Date)
	}
	if in.CustomerID != 1 || len(in.ProductIDs) != 2 {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestOrder_EmptyProductListAccepted(t *testing.T) {
	in, errs := schema.DecodeOrder(strings.NewReader(`{"date":"2024-01-01","customer_id":1,"product_ids":[]}`))
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(in.ProductIDs) != 0 {
		t.Fatalf("expected empty list, got %v", in.ProductIDs)
	}
}

func TestOrder_BadDateRejected(t *testing.T) {
	for _, date := range []string{"2024-13-01", "29-02-2024", "not-a-date"} {
		_, errs := schema.DecodeOrder(strings.NewReader(`{"date":"` + date + `","customer_id":1,"product_ids":[]}`))
		if errs == nil {
			t.Fatalf("expected error for date %q", date)
		}
		if _, ok := errs["date"]; !ok {
			t.Fatalf("expected date error for %q, got %v", date, errs)
		}
	}
}

func TestOrder_FractionalIDsRejected(t *testing.T) {
	_, errs := schema.DecodeOrder(strings.NewReader(`{"date":"2024-01-01","customer_id":1.5,"product_ids":[1,2.5]}`))
	if errs == nil {
		t.Fatal("expected field errors")
	}
	if _, ok := errs["customer_id"]; !ok {
		t.Fatalf("expected customer_id error, got %v", errs)
	}
	if _, ok := errs["product_ids"]; !ok {
		t.Fatalf("expected product_ids error, got %v", errs)
	}
}

func TestDecode_MalformedBody(t *testing.T) {
	_, errs := schema.DecodeCustomer(strings.NewReader(`not json`))
	if errs == nil {
		t.Fatal("expected field errors for malformed body")
	}

	_, errs = schema.DecodeCustomer(strings.NewReader(`null`))
	if errs == nil {
		t.Fatal("expected field errors for null body")
	}

	_, errs = schema.DecodeCustomer(strings.NewReader(`[1,2]`))
	if errs == nil {
		t.Fatal("expected field errors for non-object body")
	}
}

func TestFieldErrors_ErrorStringIsStable(t *testing.T) {
	errs := schema.FieldErrors{"b": "second", "a": "first"}
	want := "validation failed: a: first; b: second"
	if errs.Error() != want {
		t.Fatalf("expected %q, got %q", want, errs.Error())
	}
}
