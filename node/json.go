package node

import (
	"encoding/json"
	"fmt"
)

// Value is the plain-data form of a Node, used for JSON and YAML.
type Value struct {
	Kind     string   `json:"kind" yaml:"kind"`
	Text     *string  `json:"text,omitempty" yaml:"text,omitempty"`
	Index    *uint64  `json:"index,omitempty" yaml:"index,omitempty"`
	Children []*Value `json:"children,omitempty" yaml:"children,omitempty"`
}

// ToValue converts a tree to its plain-data form.
func (n *Node) ToValue() *Value {
	v := &Value{Kind: n.kind.String()}
	switch n.payload {
	case PayloadText:
		t := n.text
		v.Text = &t
	case PayloadIndex:
		i := n.index
		v.Index = &i
	}
	for _, c := range n.children {
		v.Children = append(v.Children, c.ToValue())
	}
	return v
}

// FromValue rebuilds a tree from its plain-data form.
func FromValue(v *Value) (*Node, error) {
	if v == nil {
		return nil, fmt.Errorf("node: nil value")
	}
	k, ok := ParseKind(v.Kind)
	if !ok {
		return nil, fmt.Errorf("node: unknown kind %q", v.Kind)
	}
	if v.Text != nil && v.Index != nil {
		return nil, fmt.Errorf("node: %s has both text and index", v.Kind)
	}
	children := make([]*Node, 0, len(v.Children))
	for _, cv := range v.Children {
		c, err := FromValue(cv)
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	switch {
	case v.Text != nil:
		return NewText(k, *v.Text, children...), nil
	case v.Index != nil:
		return NewIndex(k, *v.Index, children...), nil
	}
	return New(k, children...), nil
}

// MarshalJSON implements json.Marshaler.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.ToValue())
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Node) UnmarshalJSON(data []byte) error {
	var v Value
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	built, err := FromValue(&v)
	if err != nil {
		return err
	}
	*n = *built
	return nil
}
