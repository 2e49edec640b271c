package clip

// headlessProvider is a no-op clipboard provider for environments without a
// display server (headless Linux servers, containers, etc.).
// It reports an empty clipboard and silently discards writes.
type headlessProvider struct{}

func (p *headlessProvider) Name() string              { return "headless (no-op)" }
func (p *headlessProvider) GetImage() (*Image, error) { return nil, nil }
func (p *headlessProvider) SetImage(_ *Image) error   { return nil }
func (p *headlessProvider) Close()                    {}
