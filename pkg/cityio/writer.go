package cityio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/tourx/pkg/datastructure"
	"github.com/lintang-b-s/tourx/pkg/tour"
	"github.com/lintang-b-s/tourx/pkg/util"
)

// WriteSolution writes both tours to filePath, compressing when the path ends with .bz2.
// a file that can not be created or written is an error with code util.ErrIO.
func WriteSolution(filePath string, tourOne, tourTwo *datastructure.Tour) (err error) {
	if filePath == "" {
		return util.WrapErrorf(ErrEmptyPath, util.ErrIO, "could not open output file")
	}

	f, err := os.Create(filePath)
	if err != nil {
		return util.WrapErrorf(err, util.ErrIO, "could not open file %s", filePath)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = util.WrapErrorf(cerr, util.ErrIO, "could not close file %s", filePath)
		}
	}()

	var w io.Writer = f
	var bz *bzip2.Writer
	if strings.HasSuffix(filePath, bzip2Extension) {
		bz, err = bzip2.NewWriter(f, &bzip2.WriterConfig{})
		if err != nil {
			return util.WrapErrorf(err, util.ErrIO, "could not compress file %s", filePath)
		}
		w = bz
	}

	if err = EncodeSolution(w, tourOne, tourTwo); err != nil {
		return util.WrapErrorf(err, util.ErrIO, "could not write file %s", filePath)
	}
	if bz != nil {
		if err = bz.Close(); err != nil {
			return util.WrapErrorf(err, util.ErrIO, "could not write file %s", filePath)
		}
	}
	return nil
}

/*
EncodeSolution writes:

	<round(length one) + round(length two)>
	<length one> <size one>
	<one id per line>
	<blank line>
	<length two> <size two>
	<one id per line>
	<blank line>
*/
func EncodeSolution(w io.Writer, tourOne, tourTwo *datastructure.Tour) error {
	bw := bufio.NewWriter(w)

	lengthOne := tour.Length(tourOne)
	lengthTwo := tour.Length(tourTwo)

	if _, err := fmt.Fprintf(bw, "%.0f\n", math.Round(lengthOne)+math.Round(lengthTwo)); err != nil {
		return err
	}
	if err := encodeTour(bw, tourOne, lengthOne); err != nil {
		return err
	}
	if err := encodeTour(bw, tourTwo, lengthTwo); err != nil {
		return err
	}
	return bw.Flush()
}

func encodeTour(w *bufio.Writer, t *datastructure.Tour, length float64) error {
	if _, err := fmt.Fprintf(w, "%.0f %d\n", length, t.Size()); err != nil {
		return err
	}
	for _, id := range t.GetIDs() {
		if _, err := fmt.Fprintf(w, "%d\n", id); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n")
	return err
}
