package pdf

// Stylesheets for the built-in templates. Each one is a full inline
// stylesheet; the @page rule controls the physical paper size and margins,
// which the rendering engines defer to.

const standardCSS = `* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; padding: 40px; color: #333; }
.header { margin-bottom: 30px; }
.header h1 { color: #1798c1; margin-bottom: 10px; }
.header p { margin: 5px 0; }
.meta-info { margin-bottom: 20px; }
.meta-info p { margin: 5px 0; }
table { width: 100%; border-collapse: collapse; margin: 20px 0; }
th, td { border: 1px solid #ddd; padding: 12px; text-align: left; }
th { background-color: #1798c1; color: white; font-weight: 600; }
tbody tr:nth-child(even) { background-color: #f9f9f9; }
.total-row { font-weight: bold; background-color: #e9ecef !important; }
.terms { margin-top: 30px; }
.terms h2 { margin-bottom: 10px; }
.terms ol { margin-left: 20px; }
.terms li { margin: 5px 0; }
.footer { margin-top: 40px; padding-top: 20px; border-top: 1px solid #ddd; }
.footer p { margin: 5px 0; }
@page { size: A4; margin: 2cm; }
`

const professionalCSS = `* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: Georgia, 'Times New Roman', serif; padding: 40px; color: #1a1a1a; }
.header { margin-bottom: 30px; border-bottom: 3px double #2c3e50; padding-bottom: 15px; }
.header h1 { color: #2c3e50; margin-bottom: 10px; font-size: 26px; }
.header p { margin: 5px 0; }
.meta-info { margin-bottom: 20px; }
.meta-info p { margin: 5px 0; }
table { width: 100%; border-collapse: collapse; margin: 20px 0; }
th, td { border: 1px solid #bbb; padding: 12px; text-align: left; }
th { background-color: #2c3e50; color: white; font-weight: 600; letter-spacing: 0.05em; }
.total-row { font-weight: bold; background-color: #ecf0f1 !important; }
.terms { margin-top: 30px; }
.terms h2 { margin-bottom: 10px; color: #2c3e50; }
.terms ol { margin-left: 20px; }
.terms li { margin: 5px 0; }
.footer { margin-top: 40px; padding-top: 20px; border-top: 1px solid #bbb; font-style: italic; }
.footer p { margin: 5px 0; }
@page { size: A4; margin: 2cm; }
`

const minimalCSS = `* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: Helvetica, Arial, sans-serif; padding: 30px; color: #000; font-size: 13px; }
.header { margin-bottom: 20px; }
.header h1 { margin-bottom: 8px; font-size: 20px; }
.header p { margin: 3px 0; }
.meta-info { margin-bottom: 15px; }
.meta-info p { margin: 3px 0; }
table { width: 100%; border-collapse: collapse; margin: 15px 0; }
th, td { border-bottom: 1px solid #999; padding: 8px; text-align: left; }
th { font-weight: 700; border-bottom: 2px solid #000; }
.total-row { font-weight: bold; border-top: 2px solid #000; }
.terms { margin-top: 20px; }
.terms h2 { margin-bottom: 8px; font-size: 15px; }
.terms ol { margin-left: 18px; }
.terms li { margin: 3px 0; }
.footer { margin-top: 30px; padding-top: 12px; border-top: 1px solid #999; font-size: 11px; }
.footer p { margin: 3px 0; }
@page { size: A4; margin: 2cm; }
`
