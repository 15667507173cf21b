package hal

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Host  HostConfig
	Title string
	Scale int // window pixels per framebuffer pixel
	TPS   int
}
