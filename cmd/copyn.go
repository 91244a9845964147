package main

import (
	"context"

	"github.com/CodisLabs/codis/pkg/utils/log"

	"github.com/CodisLabs/blockio/pkg/iolib"
)

type cmdCopyN struct {
	input struct {
		Path string
		Size int64
	}
	tee struct {
		Path string
		*WriterBuilder
	}
}

func (cmd *cmdCopyN) Main(ctx context.Context, flags *Flags) {
	if len(flags.Inputs) != 0 {
		cmd.input.Path = flags.Inputs[0]
	} else {
		cmd.input.Path = stdinPath
	}
	cmd.tee.Path = flags.Tee

	log.Infof("copyn: input = %q, output = %q, tee = %q, count = %d\n",
		cmd.input.Path, flags.Output, cmd.tee.Path, flags.Count)

	file, size, release := openInput(cmd.input.Path)
	defer release()
	cmd.input.Size = size
	if size != 0 && size < flags.Count {
		log.Warnf("copyn: input %q has %d bytes, less than count = %d", cmd.input.Path, size, flags.Count)
	}

	var t = newTransfer("copyn", flags)
	t.total = flags.Count

	var src = t.Input(rStream(file).Buffer2(ReaderBufferSize).Reader)
	if cmd.tee.Path != "" {
		file := openWriteFile(cmd.tee.Path)
		defer closeFile(file)
		cmd.tee.WriterBuilder = wStream(file).Buffer2(WriterBufferSize)
		defer flushWriter(cmd.tee.Flusher)
		src = src.Tee(cmd.tee.Must().Writer)
	}

	output, releaseOutput := openOutput(flags.Output)
	defer releaseOutput()
	t.Output(output)

	t.Run(ctx, func(w iolib.Writer) error {
		n, err := iolib.CopyN(w, src, flags.Count)
		if err == iolib.EOF {
			log.Warnf("copyn: input ended after %d of %d bytes", n, flags.Count)
			return nil
		}
		return err
	})

	log.Info("copyn: done")
}
