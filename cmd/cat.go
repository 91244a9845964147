package main

import (
	"context"

	"github.com/CodisLabs/codis/pkg/utils/log"

	"github.com/CodisLabs/blockio/pkg/block"
	"github.com/CodisLabs/blockio/pkg/iolib"
)

type cmdCat struct {
	inputs []iolib.Reader
	size   int64
}

func (cmd *cmdCat) Main(ctx context.Context, flags *Flags) {
	log.Infof("cat: inputs = %q, output = %q, limit = %d\n", flags.Inputs, flags.Output, flags.Limit)

	var t = newTransfer("cat", flags)

	for _, path := range flags.Inputs {
		file, size, release := openInput(path)
		defer release()
		cmd.size += size
		cmd.inputs = append(cmd.inputs, rStream(file).Must().Buffer2(ReaderBufferSize).Reader)
	}

	var src = t.Input(iolib.MultiReader(cmd.inputs...))
	t.total = cmd.size
	if flags.Limit >= 0 {
		src = src.Limit(flags.Limit)
		if t.total == 0 || t.total > flags.Limit {
			t.total = flags.Limit
		}
	}

	output, release := openOutput(flags.Output)
	defer release()
	t.Output(output)

	var buf = block.Make[byte](flags.BufferSize, flags.BufferSize)
	t.Run(ctx, func(w iolib.Writer) error {
		_, err := iolib.CopyBuffer(w, src, buf)
		return err
	})

	log.Info("cat: done")
}
