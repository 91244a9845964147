package main

import (
	"context"
	"io"

	"github.com/CodisLabs/codis/pkg/utils/log"

	"github.com/CodisLabs/blockio/pkg/block"
	"github.com/CodisLabs/blockio/pkg/iolib"
)

type cmdSection struct {
	input struct {
		Path string
		Size int64
	}
}

func (cmd *cmdSection) Main(ctx context.Context, flags *Flags) {
	if len(flags.Inputs) == 0 {
		log.Panicf("section: missing input file")
	}
	cmd.input.Path = flags.Inputs[0]

	log.Infof("section: input = %q, output = %q, offset = %d, length = %d\n",
		cmd.input.Path, flags.Output, flags.Offset, flags.Length)

	file, size := openReadFile(cmd.input.Path)
	defer closeFile(file)
	cmd.input.Size = size

	var section = iolib.NewSectionReader(iolib.FromReaderAt(file), flags.Offset, flags.Length)

	var t = newTransfer("section", flags)
	if cmd.input.Size != 0 {
		end, err := section.Seek(cmd.input.Size-flags.Offset, io.SeekStart)
		if err != nil {
			log.Warnf("section: offset = %d is beyond the end of %q (%d bytes)",
				flags.Offset, cmd.input.Path, cmd.input.Size)
			return
		}
		t.total = min(end, section.Size())
		if _, err := section.Seek(0, io.SeekStart); err != nil {
			log.PanicErrorf(err, "section: rewind failed")
		}
	}
	var src = t.Input(section)

	output, release := openOutput(flags.Output)
	defer release()
	t.Output(output)

	var buf = block.Make[byte](flags.BufferSize, flags.BufferSize)
	t.Run(ctx, func(w iolib.Writer) error {
		_, err := iolib.CopyBuffer(w, src, buf)
		return err
	})

	log.Info("section: done")
}
