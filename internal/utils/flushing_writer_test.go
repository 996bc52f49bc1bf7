package utils_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrov/brim/internal/utils"
)

type flushRecordingWriter struct {
	buffer     bytes.Buffer
	flushCount int
}

func (writer *flushRecordingWriter) Write(data []byte) (int, error) {
	return writer.buffer.Write(data)
}

func (writer *flushRecordingWriter) Flush() error {
	writer.flushCount++
	return nil
}

func TestFlushingWriterFlushesAfterEachWrite(testInstance *testing.T) {
	recordingWriter := &flushRecordingWriter{}
	flushingWriter := utils.NewFlushingWriter(recordingWriter)

	writtenBytes, writeError := flushingWriter.Write([]byte("first"))
	require.NoError(testInstance, writeError)
	require.Equal(testInstance, 5, writtenBytes)

	_, writeError = flushingWriter.Write([]byte("second"))
	require.NoError(testInstance, writeError)

	require.Equal(testInstance, "firstsecond", recordingWriter.buffer.String())
	require.Equal(testInstance, 2, recordingWriter.flushCount)
}

func TestFlushingWriterDoesNotDoubleWrap(testInstance *testing.T) {
	recordingWriter := &flushRecordingWriter{}
	flushingWriter := utils.NewFlushingWriter(recordingWriter)
	require.Same(testInstance, flushingWriter, utils.NewFlushingWriter(flushingWriter))
}
