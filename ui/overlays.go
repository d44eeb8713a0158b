package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID uniquely identifies an overlay.
type OverlayID string

// Debug overlays drawn over the tank.
const (
	OverlayColliders   OverlayID = "colliders"
	OverlayDetection   OverlayID = "detection"
	OverlayChaseLines  OverlayID = "chase_lines"
	OverlayBehaviorTag OverlayID = "behavior_tags"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID          OverlayID // Unique identifier
	Name        string    // Display name
	Description string    // What this overlay shows
	Key         int32     // Keyboard key to toggle (0 = no key)
	KeyLabel    string    // Key label for display
}

// OverlayRegistry manages overlay state and metadata.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	enabled     map[OverlayID]bool
}

// NewOverlayRegistry creates a registry with the tank overlays, all off.
func NewOverlayRegistry() *OverlayRegistry {
	reg := &OverlayRegistry{enabled: make(map[OverlayID]bool)}

	reg.Register(OverlayDescriptor{
		ID:          OverlayColliders,
		Name:        "Colliders",
		Description: "Outline collision rectangles",
		Key:         rl.KeyB,
		KeyLabel:    "B",
	})
	reg.Register(OverlayDescriptor{
		ID:          OverlayDetection,
		Name:        "Food Radius",
		Description: "Circle the food search radius around each mouth",
		Key:         rl.KeyR,
		KeyLabel:    "R",
	})
	reg.Register(OverlayDescriptor{
		ID:          OverlayChaseLines,
		Name:        "Chase Lines",
		Description: "Line from each feeding fish to its food",
		Key:         rl.KeyC,
		KeyLabel:    "C",
	})
	reg.Register(OverlayDescriptor{
		ID:          OverlayBehaviorTag,
		Name:        "Behaviors",
		Description: "Label each fish with its current behavior",
		Key:         rl.KeyT,
		KeyLabel:    "T",
	})

	return reg
}

// Register adds an overlay to the registry.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	r.descriptors = append(r.descriptors, desc)
	r.enabled[desc.ID] = false
}

// Toggle switches an overlay on/off and returns the new state.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	if _, ok := r.enabled[id]; !ok {
		return false
	}
	r.enabled[id] = !r.enabled[id]
	return r.enabled[id]
}

// IsEnabled returns whether an overlay is active.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// All returns all registered overlays in registration order.
func (r *OverlayRegistry) All() []OverlayDescriptor {
	return r.descriptors
}

// HandleKeyPress checks if a key corresponds to an overlay toggle.
// Returns the overlay ID and new state if a toggle occurred.
func (r *OverlayRegistry) HandleKeyPress(key int32) (OverlayID, bool, bool) {
	for _, desc := range r.descriptors {
		if desc.Key != 0 && desc.Key == key {
			return desc.ID, r.Toggle(desc.ID), true
		}
	}
	return "", false, false
}
