package domain

// Buyer is a marketplace customer. The id is shared with the
// underlying user record; CPF is the Brazilian tax id.
type Buyer struct {
	ID    int64
	Name  string
	Email string
	Phone string
	CPF   string
}

// Seller owns products; the id is shared with the underlying user record.
type Seller struct {
	ID        int64
	StoreName string
}

// Address is a buyer's delivery address.
type Address struct {
	ID         int64
	BuyerID    int64
	Street     string
	Number     string
	Complement string
	City       string
	State      string
	PostalCode string
}

// Category groups products; many-to-many through Produto_Categoria.
type Category struct {
	ID          int64
	Name        string
	Description string
}
