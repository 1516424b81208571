package schema

import (
	"encoding/json"
	"io"
	"time"
)

// Таблицы правил сущностей. Email здесь намеренно без форматной проверки:
// исходный контракт принимает любую строку.
var (
	// Customer: все три поля обязательны, телефон ограничен 15 символами.
	Customer = Definition{
		"name":  {Required: true, Kind: KindString},
		"email": {Required: true, Kind: KindString},
		"phone": {Required: true, Kind: KindString, MaxLen: 15},
	}

	// Product: непустое имя и неотрицательная цена.
	Product = Definition{
		"name":  {Required: true, Kind: KindString, MinLen: 1},
		"price": {Required: true, Kind: KindNumber, Min: minValue(0)},
	}

	// Order: календарная дата, ссылка на покупателя и список ссылок на товары.
	// Пустой список допустим — валидация отсеивает только неразрешимые ID.
	Order = Definition{
		"date":        {Required: true, Kind: KindDate},
		"customer_id": {Required: true, Kind: KindInteger},
		"product_ids": {Required: true, Kind: KindIntegerList},
	}

	// Account: создание учётной записи.
	Account = Definition{
		"username":    {Required: true, Kind: KindString},
		"password":    {Required: true, Kind: KindString},
		"customer_id": {Required: true, Kind: KindInteger},
	}

	// AccountCredentials: обновление имени и пароля существующей записи.
	AccountCredentials = Definition{
		"username": {Required: true, Kind: KindString},
		"password": {Required: true, Kind: KindString},
	}
)

// CustomerInput — нормализованное тело запроса покупателя.
type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

// ProductInput — нормализованное тело запроса товара.
type ProductInput struct {
	Name  string
	Price float64
}

// OrderInput — нормализованное тело запроса заказа.
type OrderInput struct {
	Date       time.Time
	CustomerID int64
	ProductIDs []int64
}

// AccountInput — нормализованное тело запроса учётной записи.
type AccountInput struct {
	Username   string
	Password   string
	CustomerID int64
}

// CredentialsInput — нормализованное тело обновления учётных данных.
type CredentialsInput struct {
	Username string
	Password string
}

// DecodeCustomer декодирует и валидирует тело запроса покупателя.
func DecodeCustomer(r io.Reader) (CustomerInput, FieldErrors) {
	record, errs := decode(r, Customer)
	if errs != nil {
		return CustomerInput{}, errs
	}
	return CustomerInput{
		Name:  record.String("name"),
		Email: record.String("email"),
		Phone: record.String("phone"),
	}, nil
}

// DecodeProduct декодирует и валидирует тело запроса товара.
func DecodeProduct(r io.Reader) (ProductInput, FieldErrors) {
	record, errs := decode(r, Product)
	if errs != nil {
		return ProductInput{}, errs
	}
	return ProductInput{
		Name:  record.String("name"),
		Price: record.Float("price"),
	}, nil
}

// DecodeOrder декодирует и валидирует тело запроса заказа.
func DecodeOrder(r io.Reader) (OrderInput, FieldErrors) {
	record, errs := decode(r, Order)
	if errs != nil {
		return OrderInput{}, errs
	}
	return OrderInput{
		Date:       record.Date("date"),
		CustomerID: record.Int("customer_id"),
		ProductIDs: record.IntList("product_ids"),
	}, nil
}

// DecodeAccount декодирует и валидирует тело создания учётной записи.
func DecodeAccount(r io.Reader) (AccountInput, FieldErrors) {
	record, errs := decode(r, Account)
	if errs != nil {
		return AccountInput{}, errs
	}
	return AccountInput{
		Username:   record.String("username"),
		Password:   record.String("password"),
		CustomerID: record.Int("customer_id"),
	}, nil
}

// DecodeCredentials декодирует и валидирует тело обновления учётных данных.
func DecodeCredentials(r io.Reader) (CredentialsInput, FieldErrors) {
	record, errs := decode(r, AccountCredentials)
	if errs != nil {
		return CredentialsInput{}, errs
	}
	return CredentialsInput{
		Username: record.String("username"),
		Password: record.String("password"),
	}, nil
}

// decode читает JSON-объект из тела запроса и прогоняет его через таблицу правил.
// Некорректный JSON или не-объект репортится тем же форматом поле→причина.
func decode(r io.Reader, def Definition) (Record, FieldErrors) {
	var payload map[string]any
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, FieldErrors{"_body": "request body must be a valid JSON object"}
	}
	if payload == nil {
		return nil, FieldErrors{"_body": "request body must be a valid JSON object"}
	}
	return def.Validate(payload)
}
