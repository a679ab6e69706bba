package action

import (
	"encoding/json"
	"fmt"
)

// The enums marshal as their string names so stored hands and API
// payloads stay readable and stable across enum reordering.

func (s Street) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Street) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	v, ok := StreetFromString(name)
	if !ok {
		return fmt.Errorf("unknown street %q", name)
	}
	*s = v
	return nil
}

func (p Primitive) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Primitive) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	v, ok := PrimitiveFromString(name)
	if !ok {
		return fmt.Errorf("unknown primitive %q", name)
	}
	*p = v
	return nil
}

func (s Sizing) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Sizing) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	v, ok := SizingFromString(name)
	if !ok {
		return fmt.Errorf("unknown sizing %q", name)
	}
	*s = v
	return nil
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o *Outcome) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	v, ok := OutcomeFromString(name)
	if !ok {
		return fmt.Errorf("unknown outcome %q", name)
	}
	*o = v
	return nil
}
