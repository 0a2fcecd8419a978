package config

import "github.com/yohamta/donburi/ecs"

const (
	// Default is the only draw layer; renderers sort by Z themselves.
	Default ecs.LayerID = iota
)
