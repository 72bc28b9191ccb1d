package ecs

// AgeProjectiles advances every projectile's age by dt seconds
func AgeProjectiles(w *World, dt float64) {
	for id, p := range w.ProjectileData {
		p.Age += dt
		w.ProjectileData[id] = p
	}
}

// CullProjectiles destroys projectiles that expired or left the bounds and
// returns the destroyed IDs so owners of external resources can release them
func CullProjectiles(w *World, bounds Bounds) []EntityID {
	var culled []EntityID
	for _, id := range w.Projectiles() {
		p := w.ProjectileData[id]
		t := w.Transform[id]
		if p.Expired() || !bounds.Contains(t.Position) {
			culled = append(culled, id)
			w.DestroyEntity(id)
		}
	}
	return culled
}
