package transport

import (
	"encoding/json"
	"fmt"
	"forum-lab/domain"
	"forum-lab/errors"
)

// inboundFrame is what clients send, over the websocket or as HTTP body data.
type inboundFrame struct {
	Op   domain.UserOperation `json:"op"`
	Data json.RawMessage      `json:"data"`
}

// outboundFrame is a reply to an inbound frame. Pushed notifications are
// written as domain.Notification, which has the same op/data shape.
type outboundFrame struct {
	Op    domain.UserOperation `json:"op"`
	Data  any                  `json:"data,omitempty"`
	Error string               `json:"error,omitempty"`
}

func replyFrame(op domain.UserOperation, result any, err error) outboundFrame {
	if err != nil {
		return outboundFrame{Op: op, Error: errors.Code(err)}
	}
	return outboundFrame{Op: op, Data: result}
}

// DecodeOperation builds the operation named op from its JSON payload.
func DecodeOperation(op domain.UserOperation, data []byte) (domain.Operation, error) {
	switch op {
	case domain.OpLockPost:
		return decodeAs[domain.LockPost](op, data)
	case domain.OpFeaturePost:
		return decodeAs[domain.FeaturePost](op, data)
	case domain.OpRemovePost:
		return decodeAs[domain.RemovePost](op, data)
	case domain.OpUserJoin:
		return decodeAs[domain.UserJoin](op, data)
	case domain.OpCommunityJoin:
		return decodeAs[domain.CommunityJoin](op, data)
	case domain.OpModJoin:
		return decodeAs[domain.ModJoin](op, data)
	case domain.OpPostJoin:
		return decodeAs[domain.PostJoin](op, data)
	case domain.OpGetModlog:
		return decodeAs[domain.GetModlog](op, data)
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownOperation, op)
	}
}

func decodeAs[T domain.Operation](op domain.UserOperation, data []byte) (domain.Operation, error) {
	var decoded T
	if len(data) == 0 || string(data) == "null" {
		return decoded, nil
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrInvalidOperation, op, err)
	}
	return decoded, nil
}

// withCredential fills the auth field of op when the payload left it empty.
func withCredential(op domain.Operation, credential string) domain.Operation {
	if credential == "" {
		return op
	}
	switch o := op.(type) {
	case domain.LockPost:
		if o.Auth == "" {
			o.Auth = credential
		}
		return o
	case domain.FeaturePost:
		if o.Auth == "" {
			o.Auth = credential
		}
		return o
	case domain.RemovePost:
		if o.Auth == "" {
			o.Auth = credential
		}
		return o
	default:
		return op
	}
}
