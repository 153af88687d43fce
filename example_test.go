package scale_test

import (
	"fmt"

	"github.com/arloliu/scale"
	"github.com/arloliu/scale/codec"
)

type Vote struct {
	Proposal uint32
	Approve  *bool
}

func (v Vote) MarshalSCALE(e *codec.Encoder) error {
	return e.EncodeStruct(func(e *codec.Encoder) error {
		if err := e.EncodeU32(v.Proposal); err != nil {
			return err
		}

		return e.EncodeOptionBool(v.Approve)
	})
}

func (v *Vote) UnmarshalSCALE(d *codec.Decoder) error {
	return d.DecodeStruct(func(d *codec.Decoder) (err error) {
		if v.Proposal, err = d.DecodeU32(); err != nil {
			return err
		}
		v.Approve, err = d.DecodeOptionBool()

		return err
	})
}

func ExampleMarshal() {
	approve := false
	data, err := scale.Marshal(Vote{Proposal: 7, Approve: &approve})
	if err != nil {
		panic(err)
	}
	fmt.Printf("% x\n", data)

	var v Vote
	if err := scale.Unmarshal(data, &v, codec.WithStrict()); err != nil {
		panic(err)
	}
	fmt.Println(v.Proposal, *v.Approve)
	// Output:
	// 07 00 00 00 02
	// 7 false
}
