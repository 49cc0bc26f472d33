package component

// PlayerComponent tags the controlled ship, exactly one is expected
type PlayerComponent struct{}

// CameraComponent tags the view anchor, exactly one is expected
type CameraComponent struct{}

// IndexableComponent opts an entity into the per-tick spatial index rebuild
type IndexableComponent struct{}

// ResettableComponent marks level content destroyed en masse when a travel cycle completes
type ResettableComponent struct{}
