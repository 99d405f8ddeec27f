package component

// EditorCameraTag marks the camera the editor overlay projects through.
// When no tagged camera is active the first active camera is used.
type EditorCameraTag struct{}

var EditorCameraTagComponent = NewComponent[EditorCameraTag]()
