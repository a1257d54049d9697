package benc

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/manokara/bencedit/ir"
)

// Encode writes node to w in canonical form. Dictionary keys are
// already sorted in the ir representation, so output is deterministic.
func Encode(w io.Writer, node *ir.Node) error {
	bw := bufio.NewWriterSize(w, chunkSize)
	if err := encode(bw, node); err != nil {
		return err
	}
	return bw.Flush()
}

// EncodeBytes encodes node into memory.
func EncodeBytes(node *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(buf, node); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encode(w *bufio.Writer, node *ir.Node) error {
	switch node.Type {
	case ir.IntegerType:
		w.WriteByte('i')
		w.WriteString(strconv.FormatInt(node.Int64, 10))
		return w.WriteByte('e')
	case ir.BytesType:
		return encodeBytes(w, node.Bytes)
	case ir.ListType:
		w.WriteByte('l')
		for _, v := range node.Values {
			if err := encode(w, v); err != nil {
				return err
			}
		}
		return w.WriteByte('e')
	case ir.DictType:
		w.WriteByte('d')
		for i, key := range node.Keys {
			if err := encodeBytes(w, []byte(key)); err != nil {
				return err
			}
			if err := encode(w, node.Values[i]); err != nil {
				return err
			}
		}
		return w.WriteByte('e')
	default:
		return fmt.Errorf("cannot encode node type %d", node.Type)
	}
}

func encodeBytes(w *bufio.Writer, data []byte) error {
	w.WriteString(strconv.Itoa(len(data)))
	w.WriteByte(':')
	_, err := w.Write(data)
	return err
}
