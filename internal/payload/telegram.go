package payload

import "strings"

// TelegramGroup is the projection of a vault chat-group record.
type TelegramGroup struct {
	Name        string
	Description string
	Subject     string

	CanSendPolls   bool
	CanPinMessages bool
}

// Text returns the group's scannable text blob.
func (g TelegramGroup) Text() string {
	return strings.TrimSpace(strings.Join([]string{g.Name, g.Description, g.Subject}, " "))
}

// TelegramMessage is the projection of a vault chat-message record.
type TelegramMessage struct {
	IsPinned bool

	// ContentType is the Telegram content discriminator (sourceData.content._),
	// e.g. "messagePhoto", "messageSticker", "messageAnimation".
	ContentType string

	ViaBotUserID float64

	// CaptionEntityTypes holds sourceData.content.caption.entities[].type._
	// values; EntityTypes holds sourceData.content.entities[].type._ values.
	CaptionEntityTypes []string
	EntityTypes        []string

	// TextFields collects every string field found on the record (one nested
	// level deep) for the engagement keyword scan.
	TextFields []string
}

// Text returns the message's scannable text blob.
func (m TelegramMessage) Text() string {
	return strings.TrimSpace(strings.Join(m.TextFields, " "))
}

// ProjectTelegramGroups extracts group projections from raw vault items.
func ProjectTelegramGroups(items []any) []TelegramGroup {
	groups := make([]TelegramGroup, 0, len(items))
	for _, item := range items {
		raw, ok := item.(map[string]any)
		if !ok {
			continue
		}
		groups = append(groups, TelegramGroup{
			Name:           digString(raw, "name"),
			Description:    digString(raw, "description"),
			Subject:        digString(raw, "subject"),
			CanSendPolls:   digBool(raw, "sourceData", "permissions", "can_send_polls"),
			CanPinMessages: digBool(raw, "sourceData", "permissions", "can_pin_messages"),
		})
	}
	return groups
}

// ProjectTelegramMessages extracts message projections from raw vault items.
func ProjectTelegramMessages(items []any) []TelegramMessage {
	messages := make([]TelegramMessage, 0, len(items))
	for _, item := range items {
		raw, ok := item.(map[string]any)
		if !ok {
			continue
		}
		msg := TelegramMessage{
			IsPinned:           digBool(raw, "sourceData", "is_pinned"),
			ContentType:        digString(raw, "sourceData", "content", "_"),
			ViaBotUserID:       digFloat(raw, "sourceData", "via_bot_user_id"),
			CaptionEntityTypes: entityTypes(digList(raw, "sourceData", "content", "caption", "entities")),
			EntityTypes:        entityTypes(digList(raw, "sourceData", "content", "entities")),
			TextFields:         stringFields(raw),
		}
		messages = append(messages, msg)
	}
	return messages
}

func entityTypes(entities []any) []string {
	var types []string
	for _, e := range entities {
		entity, ok := e.(map[string]any)
		if !ok {
			continue
		}
		if t := digString(entity, "type", "_"); t != "" {
			types = append(types, t)
		}
	}
	return types
}

// stringFields gathers string values from the record and its immediate
// sub-objects, matching how much of a message the keyword scan looks at.
func stringFields(raw map[string]any) []string {
	var fields []string
	for _, value := range raw {
		switch v := value.(type) {
		case string:
			fields = append(fields, v)
		case map[string]any:
			for _, nested := range v {
				if s, ok := nested.(string); ok {
					fields = append(fields, s)
				}
			}
		}
	}
	return fields
}
