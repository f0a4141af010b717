package yclients

// ClientsSearchBuilder assembles a SearchClientsBody fluently.
type ClientsSearchBuilder struct {
	body SearchClientsBody
}

func NewClientsSearchBuilder() *ClientsSearchBuilder {
	return &ClientsSearchBuilder{}
}

func (b *ClientsSearchBuilder) Page(page, pageSize int) *ClientsSearchBuilder {
	b.body.Page = page
	b.body.PageSize = pageSize
	return b
}

func (b *ClientsSearchBuilder) Fields(fields ...string) *ClientsSearchBuilder {
	b.body.Fields = fields
	return b
}

func (b *ClientsSearchBuilder) OrderBy(field, direction string) *ClientsSearchBuilder {
	b.body.OrderBy = field
	b.body.OrderByDirection = direction
	return b
}

// Operation sets how filters combine, "AND" or "OR".
func (b *ClientsSearchBuilder) Operation(op string) *ClientsSearchBuilder {
	b.body.Operation = op
	return b
}

func (b *ClientsSearchBuilder) Filter(f ClientsFilter) *ClientsSearchBuilder {
	b.body.Filters = append(b.body.Filters, f)
	return b
}

func (b *ClientsSearchBuilder) Build() SearchClientsBody {
	return b.body
}
