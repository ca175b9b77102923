package scenes

// SceneChanger switches the active scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}
