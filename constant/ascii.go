package constant

// AsciiArtLogo is the application's banner shown in the root help text.
const AsciiArtLogo = `
 ___  ___  _  _____ ___  _____  __
| _ \/ _ \| |/ / __|   \| __\ \/ /
|  _/ (_) | ' <| _|| |) | _| >  <
|_|  \___/|_|\_\___|___/|___/_/\_\`
