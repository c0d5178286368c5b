package main

import (
	"log"
)

func main() {
	cfg := DefaultConfig()

	meshes, err := BuildGrid(cfg.CubeScale, cfg.GridSpacing)
	if err != nil {
		log.Fatalln("failed to build cube grid:", err)
	}

	scene := NewScene(meshes, cfg.Camera, cfg.Viewport)
	scene.Rotation.Angles = cfg.InitialAngles
	app := NewApp(scene, cfg)

	log.Printf("%s: %d meshes, %dx%d window, %s backend", cfg.Title, len(meshes), cfg.WindowWidth, cfg.WindowHeight, backendName)

	if err := runBackend(app); err != nil {
		log.Fatalln(err)
	}
}
