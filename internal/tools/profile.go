package tools

import (
	"context"
	"encoding/json"

	"github.com/finchline/finchline/internal/format"
	"github.com/finchline/finchline/internal/schema"
	"github.com/finchline/finchline/internal/shared/stringutils"
	"github.com/finchline/finchline/internal/xapi"
)

// GetProfileTool shows an account profile; without a username it shows the
// authenticated account.
type GetProfileTool struct {
	client *xapi.Client
}

var getProfileSchema = schema.Object{
	Fields: map[string]schema.Field{
		"username": {
			Type:        schema.TypeString,
			Description: "Username to look up (defaults to your own account)",
		},
	},
}

func (t *GetProfileTool) Name() string { return string(ToolGetProfile) }
func (t *GetProfileTool) Description() string {
	return "Get a Twitter profile, your own by default"
}
func (t *GetProfileTool) Parameters() json.RawMessage {
	return getProfileSchema.JSON()
}

func (t *GetProfileTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	in, err := getProfileSchema.Validate(args)
	if err != nil {
		return "", err
	}
	user, err := t.client.Profile(ctx, stringutils.NormalizeHandle(argString(in, "username")))
	if err != nil {
		return remoteFailure(t.Name(), err)
	}
	return format.Profile(user), nil
}

// UpdateProfileTool changes fields of the authenticated profile. At least
// one field must be provided.
type UpdateProfileTool struct {
	client *xapi.Client
}

var updateProfileSchema = schema.Object{
	Fields: map[string]schema.Field{
		"name": {
			Type:        schema.TypeString,
			Description: "New display name",
			MaxLength:   50,
		},
		"bio": {
			Type:        schema.TypeString,
			Description: "New bio",
			MaxLength:   160,
		},
		"location": {
			Type:        schema.TypeString,
			Description: "New location",
			MaxLength:   30,
		},
		"url": {
			Type:        schema.TypeString,
			Description: "New website URL",
			MaxLength:   100,
			URI:         true,
		},
	},
	AtLeastOne: []string{"name", "bio", "location", "url"},
}

func (t *UpdateProfileTool) Name() string { return string(ToolUpdateProfile) }
func (t *UpdateProfileTool) Description() string {
	return "Update your Twitter profile (name, bio, location, url)"
}
func (t *UpdateProfileTool) Parameters() json.RawMessage {
	return updateProfileSchema.JSON()
}

func (t *UpdateProfileTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	in, err := updateProfileSchema.Validate(args)
	if err != nil {
		return "", err
	}

	upd := xapi.ProfileUpdate{
		Name:     argStringPtr(in, "name"),
		Bio:      argStringPtr(in, "bio"),
		Location: argStringPtr(in, "location"),
		URL:      argStringPtr(in, "url"),
	}
	var changed []string
	for _, f := range []struct {
		name string
		set  *string
	}{
		{"name", upd.Name}, {"bio", upd.Bio}, {"location", upd.Location}, {"url", upd.URL},
	} {
		if f.set != nil {
			changed = append(changed, f.name)
		}
	}

	if _, err := t.client.UpdateProfile(ctx, upd); err != nil {
		return remoteFailure(t.Name(), err)
	}
	return format.ProfileUpdated(changed), nil
}
