package graph

import (
	"context"
	"net/http"
)

// GetPagesList fetches the pages the principal can act as. Errors are
// logged and yield an empty list.
func (c *Client) GetPagesList(ctx context.Context) []Page {
	res := c.request(ctx, http.MethodGet, Me+"/accounts", nil, nil, "")
	if !res.OK() {
		return []Page{}
	}

	var body struct {
		Data []Page `json:"data"`
	}
	if err := decode(res.Data, &body); err != nil {
		c.logger.Error("decode pages list", "error", err)
		return []Page{}
	}
	if body.Data == nil {
		return []Page{}
	}
	return body.Data
}

// SelectPage fetches the page list afresh and returns the page named name.
// The page cache is not updated.
func (c *Client) SelectPage(ctx context.Context, name string) (Page, bool) {
	for _, p := range c.GetPagesList(ctx) {
		if p.Name == name {
			return p, true
		}
	}
	c.logger.Info("page not found", "page", name)
	return Page{}, false
}

// resolve maps a target to an identity and credential: "me", then the page
// cache, then a fresh lookup by page name.
func (c *Client) resolve(ctx context.Context, target string) (Target, error) {
	if t, ok := c.resolveCached(target); ok {
		return t, nil
	}
	if target != Me {
		if p, ok := c.SelectPage(ctx, target); ok {
			return Target{ID: p.ID, AccessToken: p.AccessToken}, nil
		}
	}
	return Target{}, c.unresolved(target)
}

// resolveStrict accepts only "me" and cached page names.
func (c *Client) resolveStrict(target string) (Target, error) {
	if target == Me {
		return Target{ID: c.me.ID, AccessToken: c.accessToken}, nil
	}
	if t, ok := c.resolveCached(target); ok {
		return t, nil
	}
	return Target{}, c.unresolved(target)
}

func (c *Client) resolveCached(target string) (Target, bool) {
	if target == Me {
		if c.me.ID == "" {
			return Target{}, false
		}
		return Target{ID: c.me.ID, AccessToken: c.accessToken}, true
	}
	if p, ok := c.pages[target]; ok {
		return Target{ID: p.ID, AccessToken: p.AccessToken}, true
	}
	return Target{}, false
}

func (c *Client) unresolved(target string) error {
	err := &ResolutionError{Target: target}
	c.logger.Error("resolve target", "target", target, "error", err)
	return err
}
