package aggregating

// partition agrupa acumuladores por chave mantendo a ordem em que cada chave
// apareceu pela primeira vez. A ordem de iteração é observável (ex: categorias),
// por isso não usamos apenas um map.
type partition[K comparable, V any] struct {
	keys   []K
	values []V
	index  map[K]int
}

func newPartition[K comparable, V any]() *partition[K, V] {
	return &partition[K, V]{
		index: make(map[K]int),
	}
}

// fold substitui o acumulador da chave pelo resultado de step.
// Chaves novas começam do valor zero de V.
func (p *partition[K, V]) fold(key K, step func(V) V) {
	i, exists := p.index[key]
	if !exists {
		var zero V
		i = len(p.values)
		p.index[key] = i
		p.keys = append(p.keys, key)
		p.values = append(p.values, zero)
	}

	p.values[i] = step(p.values[i])
}

func (p *partition[K, V]) each(fn func(key K, value V)) {
	for i, key := range p.keys {
		fn(key, p.values[i])
	}
}

func (p *partition[K, V]) len() int {
	return len(p.keys)
}
