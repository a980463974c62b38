package executor

// Layer is a named drawing layer with an AutoCAD color index.
type Layer struct {
	Name  string
	Color int
}

// layerTable tracks the layers created so far and which one is current.
// Creation is idempotent: re-creating an existing layer only updates its
// color when an explicit one is given.
type layerTable struct {
	layers  map[string]*Layer
	order   []string
	current string
}

const defaultLayerName = "0"

func newLayerTable() *layerTable {
	t := &layerTable{layers: make(map[string]*Layer)}
	t.create(defaultLayerName, 7)
	t.current = defaultLayerName
	return t
}

func (t *layerTable) create(name string, color int) *Layer {
	if layer, ok := t.layers[name]; ok {
		if color > 0 {
			layer.Color = color
		}
		return layer
	}
	layer := &Layer{Name: name, Color: color}
	if layer.Color <= 0 {
		layer.Color = 7
	}
	t.layers[name] = layer
	t.order = append(t.order, name)
	return layer
}

func (t *layerTable) currentLayer() *Layer {
	return t.layers[t.current]
}

func (t *layerTable) names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}
