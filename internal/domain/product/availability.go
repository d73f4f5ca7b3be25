package product

import "github.com/google/uuid"

type ShortfallStatus string

const (
	ShortfallOutOfStock        ShortfallStatus = "OUT_OF_STOCK"
	ShortfallInsufficientStock ShortfallStatus = "INSUFFICIENT_STOCK"
	ShortfallNotFound          ShortfallStatus = "NOT_FOUND"
)

// Shortfall describes one item that cannot be served from current stock.
type Shortfall struct {
	ProductID uuid.UUID
	Name      string
	Requested int
	Available int
	Status    ShortfallStatus
}

// CheckShortfall returns nil when the product can serve the requested quantity.
func (p *Product) CheckShortfall(requested int) *Shortfall {
	if p.available >= requested {
		return nil
	}
	status := ShortfallInsufficientStock
	if p.available <= 0 {
		status = ShortfallOutOfStock
	}
	return &Shortfall{
		ProductID: p.id,
		Name:      p.name,
		Requested: requested,
		Available: p.available,
		Status:    status,
	}
}

func MissingProduct(id uuid.UUID, requested int) Shortfall {
	return Shortfall{
		ProductID: id,
		Requested: requested,
		Available: 0,
		Status:    ShortfallNotFound,
	}
}

// Evaluate checks every item against the loaded products. Products missing from the map are reported as not found.
func Evaluate(items Items, products map[uuid.UUID]*Product) []Shortfall {
	var out []Shortfall
	for _, it := range items.All() {
		p, ok := products[it.ProductID()]
		if !ok {
			out = append(out, MissingProduct(it.ProductID(), it.Quantity()))
			continue
		}
		if s := p.CheckShortfall(it.Quantity()); s != nil {
			out = append(out, *s)
		}
	}
	return out
}
