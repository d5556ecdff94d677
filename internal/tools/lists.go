package tools

import (
	"context"
	"encoding/json"

	"github.com/finchline/finchline/internal/format"
	"github.com/finchline/finchline/internal/schema"
	"github.com/finchline/finchline/internal/xapi"
)

// CreateListTool creates a new list owned by the authenticated account.
type CreateListTool struct {
	client *xapi.Client
}

var createListSchema = schema.Object{
	Fields: map[string]schema.Field{
		"name": {
			Type:        schema.TypeString,
			Description: "Name of the list",
			MinLength:   1,
			MaxLength:   25,
		},
		"description": {
			Type:        schema.TypeString,
			Description: "Description of the list",
			MaxLength:   100,
		},
		"private": {
			Type:        schema.TypeBoolean,
			Description: "Whether the list is private",
			Default:     false,
		},
	},
	Required: []string{"name"},
}

func (t *CreateListTool) Name() string        { return string(ToolCreateList) }
func (t *CreateListTool) Description() string { return "Create a new Twitter list" }
func (t *CreateListTool) Parameters() json.RawMessage {
	return createListSchema.JSON()
}

func (t *CreateListTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	in, err := createListSchema.Validate(args)
	if err != nil {
		return "", err
	}
	list, err := t.client.CreateList(ctx,
		argString(in, "name"), argString(in, "description"), argBool(in, "private"))
	if err != nil {
		return remoteFailure(t.Name(), err)
	}
	return format.ListCreated(list), nil
}

// GetListInfoTool shows one list in full.
type GetListInfoTool struct {
	client *xapi.Client
}

var getListInfoSchema = schema.Object{
	Fields: map[string]schema.Field{
		"listId": {
			Type:        schema.TypeString,
			Description: "ID of the list",
			MinLength:   1,
		},
	},
	Required: []string{"listId"},
}

func (t *GetListInfoTool) Name() string        { return string(ToolGetListInfo) }
func (t *GetListInfoTool) Description() string { return "Get information about a Twitter list" }
func (t *GetListInfoTool) Parameters() json.RawMessage {
	return getListInfoSchema.JSON()
}

func (t *GetListInfoTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	in, err := getListInfoSchema.Validate(args)
	if err != nil {
		return "", err
	}
	list, err := t.client.ListByID(ctx, argString(in, "listId"))
	if err != nil {
		return remoteFailure(t.Name(), err)
	}
	return format.ListInfo(list), nil
}

// GetUserListsTool shows the lists owned by the authenticated account.
type GetUserListsTool struct {
	client *xapi.Client
}

var getUserListsSchema = schema.Object{
	Fields: map[string]schema.Field{},
}

func (t *GetUserListsTool) Name() string        { return string(ToolGetUserLists) }
func (t *GetUserListsTool) Description() string { return "Get the Twitter lists you own" }
func (t *GetUserListsTool) Parameters() json.RawMessage {
	return getUserListsSchema.JSON()
}

func (t *GetUserListsTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	if _, err := getUserListsSchema.Validate(args); err != nil {
		return "", err
	}
	lists, err := t.client.OwnedLists(ctx)
	if err != nil {
		return remoteFailure(t.Name(), err)
	}
	return format.Lists("Your lists", lists), nil
}
