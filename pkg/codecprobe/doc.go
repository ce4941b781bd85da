// Package codecprobe lists the codecs compiled into an FFmpeg libavcodec
// shared library. The library is loaded from a caller-supplied path, asked
// for its codec list and unloaded again; nothing is cached between calls.
//
//	codecs, err := codecprobe.ListCodecs("/usr/lib/x86_64-linux-gnu/libavcodec.so.58")
//	if err != nil {
//	    return err
//	}
//	for _, c := range codecs {
//	    fmt.Println(c.ID, c.Name, c.LongName)
//	}
//
// The library must export avcodec_register_all and av_codec_next, which
// FFmpeg provides up to release 4.x and Electron's bundled libffmpeg still
// ships. See the electron subpackage for locating that build.
package codecprobe
