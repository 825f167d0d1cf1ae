// Copyright 2013 - 2015 Sebastian Ruml <sebastian.ruml@gmail.com>
// Copyright 2021 - 2022 Mendel Greenberg <mendel@chabad360.me>

//Package osc encodes and decodes OpenSoundControl packets.
//
//Open Sound Control (OSC) is an open, transport-independent, message-based protocol developed for communication among computers,
//sound synthesizers, and other multimedia devices.
//
//Features
//
//- Supports OSC messages with the following TypeTags:
//
//	'i' (Int32)
//	'f' (Float32)
//	's' (String)
//	'b' (Blob)
//	't' (Timetag)
//	'T' (True)
//	'F' (False)
//	'N' (Nil)
//	'I' (Impulse)
//
//- Supports OSC bundles, including TimeTags and arbitrarily nested bundles
//
//- Decoding errors are classified as ErrTruncated, ErrMalformed or ErrUnknownTag;
//  bundle element failures carry the index of the failing element
//
//Packets
//
//The unit of transmission of OSC is an OSC Packet. Any application that sends OSC Packets is an OSC Client;
//any application that receives OSC Packets is an OSC Server.
//
//An OSC packet consists of its contents, a contiguous block of binary data.
//
//OSC packets come in two flavors:
//
//OSC Messages: An OSC message consists of an OSC address pattern and  zero or more OSC arguments.
//
//OSC Bundles: An OSC Bundle consists of an OSC Timetag, followed by zero or more OSC bundle elements.
//Each bundle element can be another OSC bundle (note this recursive definition: a bundle may contain bundles) or OSC message.
//
//Blobs are written as a length followed by the raw bytes, without padding. Set
//Encoder.PadBlobs and Decoder.PadBlobs to talk to peers that pad blobs to 4 bytes.
//
//Usage
//
//OSC client example:
//  client, _ := osc.Dial("localhost:8765")
//  msg := osc.NewMessage("/osc/address")
//  msg.Append(osc.Int32(111))
//  msg.Append(osc.True{})
//  msg.Append(osc.String("hello"))
//  client.Send(msg)
//
//OSC server example:
//  server := &osc.Server{
//      Addr: "127.0.0.1:8765",
//      Handler: func(p osc.Packet, addr net.Addr) {
//          fmt.Println(p)
//      },
//  }
//  server.ListenAndServe()
//
//Decoding without a transport:
//  p, err := osc.ParsePacket(data)
//  switch p := p.(type) {
//  case *osc.Message:
//  case *osc.Bundle:
//  }
package osc
