package committer

import "cloud.google.com/go/spanner"

// Plan collects the mutations of one unit of work in apply order.
type Plan struct {
	mutations []*spanner.Mutation
}

func NewPlan() *Plan {
	return &Plan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add appends mutations, skipping nils.
func (p *Plan) Add(ms ...*spanner.Mutation) {
	for _, m := range ms {
		if m == nil {
			continue
		}
		p.mutations = append(p.mutations, m)
	}
}

func (p *Plan) IsEmpty() bool {
	return len(p.mutations) == 0
}

func (p *Plan) Len() int {
	return len(p.mutations)
}

func (p *Plan) Mutations() []*spanner.Mutation {
	return p.mutations
}
