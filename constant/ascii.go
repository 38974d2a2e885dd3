package constant

// AsciiArtLogo is the application's banner.
const AsciiArtLogo = `
   ___  ________                                
  / _ |/  _/ __ \ ___ ___  __ ______________ 
 / __ |/ // /_/ /(_-</ _ \/ // / __/ __/ -_)
/_/ |_/___/\____//___/\___/\_,_/_/  \__/\__/ `
