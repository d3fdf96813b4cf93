package engine

// SystemBase bundles what every gameplay system reads: the world for deferred
// creation and deletion, the typed resources, and the component stores
type SystemBase struct {
	World     *World
	Resource  Resource
	Component ComponentStore
}

// NewSystemBase snapshots resources from w
// Resources must be registered first; MustGetResource panics on a missing one
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  GetResourceStore(w),
		Component: w.Components,
	}
}
