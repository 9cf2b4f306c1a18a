package graph

// Principal is the user owning the root access token.
type Principal struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email,omitempty"`
	Gender   string   `json:"gender,omitempty"`
	Birthday string   `json:"birthday,omitempty"`
	Picture  *Picture `json:"picture,omitempty"`
}

// PictureURL returns the profile picture URL, or "" if none was returned.
func (p Principal) PictureURL() string {
	if p.Picture == nil || p.Picture.Data == nil {
		return ""
	}
	return p.Picture.Data.URL
}

// Picture wraps a ProfilePictureSource node.
type Picture struct {
	Data *PictureSource `json:"data,omitempty"`
}

// PictureSource describes a single profile picture.
type PictureSource struct {
	URL          string `json:"url"`
	Height       int    `json:"height,omitempty"`
	Width        int    `json:"width,omitempty"`
	IsSilhouette bool   `json:"is_silhouette,omitempty"`
}

// Page is a page the principal can act as, with its page-scoped token.
type Page struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AccessToken string `json:"access_token"`
}

// Target is the identity and credential a single call is made with.
type Target struct {
	ID          string
	AccessToken string
}
