package output

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/clbanning/mxj"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/tidwall/sjson"
	"go.uber.org/zap"

	"github.com/ostafen/mathsets/internal"
	"github.com/ostafen/mathsets/store"
	"github.com/ostafen/mathsets/store/badger"
	"github.com/ostafen/mathsets/store/bbolt"
)

type Writer struct {
	log *zap.Logger
}

func NewWriter(log *zap.Logger) *Writer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Writer{log: log}
}

type encoder func(res Result) ([]byte, error)

var encoders = map[Format]encoder{
	JSON:    encodeJSON,
	TXT:     encodeTXT,
	XML:     encodeXML,
	MSGPACK: encodeMsgpack,
}

// Write stores res and returns where it went. File formats never overwrite an existing file:
// the name gets a (n) suffix instead. Store formats append a record and return the store path.
func (w *Writer) Write(ctx context.Context, format Format, path string, res Result) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if format.IsStore() {
		if err := w.save(format, path, res); err != nil {
			return "", errors.Wrapf(ErrOutput, "%s: %v", path, err)
		}
		return path, nil
	}

	encode, ok := encoders[format]
	if !ok {
		return "", errors.Wrapf(ErrUnknownFormat, "%q", format)
	}

	data, err := encode(res)
	if err != nil {
		return "", errors.Wrapf(ErrOutput, "%s: %v", path, err)
	}

	target, err := ChoosePath(format, path)
	if err != nil {
		return "", errors.Wrapf(ErrOutput, "%s: %v", path, err)
	}
	if err := saveToFile(target, data); err != nil {
		return "", errors.Wrapf(ErrOutput, "%s: %v", target, err)
	}

	w.log.Info("result written",
		zap.String("path", target),
		zap.String("format", string(format)),
		zap.String("size", humanize.Bytes(uint64(len(data)))))
	return target, nil
}

func (w *Writer) save(format Format, path string, res Result) error {
	s, err := OpenStore(format, path, w.log)
	if err != nil {
		return err
	}

	rec := &store.Record{
		Mode:        res.Mode,
		Point:       res.Point,
		Title:       res.Title,
		Atoms:       res.Atoms,
		Affiliation: res.Affiliation,
	}
	if err := store.NewResults(s).Save(rec); err != nil {
		s.Close()
		return err
	}

	w.log.Info("result stored", zap.String("path", path), zap.String("id", rec.ID))
	return s.Close()
}

// OpenStore opens the result store of the given kind: a file for bbolt, a directory for badger.
func OpenStore(format Format, path string, log *zap.Logger) (store.Store, error) {
	switch format {
	case BBOLT:
		return bbolt.Open(path)
	case BADGER:
		return badger.Open(path, log)
	}
	return nil, errors.Wrapf(ErrUnknownFormat, "%q is not a result store", format)
}

// ChoosePath returns path with its extension replaced by the format one. When that file exists,
// the first free name among path(1).ext, path(2).ext, ... is returned.
func ChoosePath(format Format, path string) (string, error) {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	ext := "." + string(format)

	candidate := base + ext
	for n := 1; ; n++ {
		_, err := os.Stat(candidate)
		if os.IsNotExist(err) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		candidate = fmt.Sprintf("%s(%d)%s", base, n, ext)
	}
}

func saveToFile(path string, data []byte) error {
	file, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	defer os.Remove(file.Name())

	if _, err := file.Write(data); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	return os.Rename(file.Name(), path)
}

var pathEscaper = strings.NewReplacer(
	".", `\.`, "*", `\*`, "?", `\?`, "|", `\|`, "#", `\#`, "@", `\@`, ":", `\:`,
)

func encodeJSON(res Result) ([]byte, error) {
	return sjson.SetBytes([]byte("{}"), pathEscaper.Replace(res.Title), res.Data())
}

func encodeTXT(res Result) ([]byte, error) {
	return []byte(res.Title + "\n" + res.Data()), nil
}

func encodeXML(res Result) ([]byte, error) {
	m := mxj.Map{
		"result": map[string]interface{}{
			"title": res.Title,
			"data":  res.Data(),
		},
	}

	body, err := m.XmlIndent("", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

type record struct {
	Title     string          `msgpack:"title"`
	Mode      string          `msgpack:"mode"`
	Point     float64         `msgpack:"point"`
	Data      string          `msgpack:"data"`
	Atoms     []internal.Atom `msgpack:"atoms"`
	Contained bool            `msgpack:"contained,omitempty"`
	Values    []float64       `msgpack:"values,omitempty"`
}

func encodeMsgpack(res Result) ([]byte, error) {
	rec := record{
		Title: res.Title,
		Mode:  res.Mode,
		Data:  res.Data(),
		Atoms: internal.EncodeAtoms(res.Atoms),
	}
	if res.Affiliation != nil {
		rec.Point = res.Point
		rec.Contained = res.Affiliation.Contained
		rec.Values = res.Affiliation.Values
	}
	return internal.Encode(rec)
}
